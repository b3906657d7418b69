package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s := New(Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:    &out,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	return s, &out
}

func withBoard(t *testing.T, s *Session, width, height int, layout ...mines.Point) {
	t.Helper()
	b, err := mines.NewWithMines(width, height, layout)
	require.NoError(t, err)
	s.begin(b, "", nil)
}

func TestRevealAndWin(t *testing.T) {
	s, out := newSession(t)
	withBoard(t, s, 3, 3, mines.Point{X: 0, Y: 0})
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "reveal 2 2"))
	assert.Contains(t, out.String(), "0 # 1 .\n1 1 1 .\n2 . . .\n")

	out.Reset()
	require.NoError(t, s.Execute(ctx, "m 0 0"))
	assert.Equal(t, mines.Won, s.Board().Outcome())
	assert.Contains(t, out.String(), "0 F 1 .\n")
	assert.Contains(t, out.String(), "you won")
}

func TestRevealMineLoses(t *testing.T) {
	s, out := newSession(t)
	withBoard(t, s, 3, 3, mines.Point{X: 0, Y: 0}, mines.Point{X: 2, Y: 2})
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "R 0 0"))
	assert.Equal(t, mines.Lost, s.Board().Outcome())
	assert.Contains(t, out.String(), "0 X # #\n")
	assert.Contains(t, out.String(), "2 # # *\n")
	assert.Contains(t, out.String(), "boom! there was a mine at (0, 0)")

	out.Reset()
	require.NoError(t, s.Execute(ctx, "reveal 1 1"))
	assert.Equal(t, "the game is over, start another with new\n", out.String())
}

func TestMarkedCellIsNotRevealed(t *testing.T) {
	s, out := newSession(t)
	withBoard(t, s, 3, 3, mines.Point{X: 0, Y: 0}, mines.Point{X: 2, Y: 2})
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "mark 1 1"))
	out.Reset()
	require.NoError(t, s.Execute(ctx, "reveal 1 1"))
	assert.Equal(t, "nothing to reveal at (1, 1)\n", out.String())
	assert.False(t, s.Board().Started())
}

func TestCommandErrors(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Execute(ctx, "reveal 1 1"), ErrNoGame)
	assert.ErrorIs(t, s.Execute(ctx, "print"), ErrNoGame)

	withBoard(t, s, 4, 3, mines.Point{X: 0, Y: 0})

	tests := []struct {
		line string
		want string
	}{
		{"dance", "unknown command"},
		{"reveal 1", "invalid number of arguments"},
		{"reveal 1 2 3", "invalid number of arguments"},
		{"reveal a 1", "x must be an int"},
		{"mark 1 b", "y must be an int"},
		{"print yaml", "unknown print format"},
		{"new 1 2", "expected width, height and mine count"},
		{"new 5 5 x", "mine count must be an int"},
		{"new 5 5 5 -1", "seed must be"},
		{"new nightmare", "unknown difficulty"},
		{"help me", "invalid number of arguments"},
	}
	for _, test := range tests {
		err := s.Execute(ctx, test.line)
		if assert.Error(t, err, test.line) {
			assert.Contains(t, err.Error(), test.want, test.line)
		}
	}

	err := s.Execute(ctx, "reveal 4 0")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)
	err = s.Execute(ctx, "mark -1 0")
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)
	err = s.Execute(ctx, "new 0 3 1")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
	err = s.Execute(ctx, "new 2 2 4")
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)

	// the board survived all of that
	assert.Equal(t, mines.GameParams{Width: 4, Height: 3, MineCount: 1}, s.Board().Params())
	assert.False(t, s.Board().Started())
	assert.NoError(t, s.Execute(ctx, "   "))
}

func TestNewGameForms(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "new"))
	assert.Equal(t, mines.Easy, s.Board().Params())

	require.NoError(t, s.Execute(ctx, "new Hard"))
	assert.Equal(t, mines.Hard, s.Board().Params())

	require.NoError(t, s.Execute(ctx, "new"))
	assert.Equal(t, mines.Hard, s.Board().Params())

	require.NoError(t, s.Execute(ctx, "new 5 4 3 99"))
	assert.Equal(t, mines.GameParams{Width: 5, Height: 4, MineCount: 3}, s.Board().Params())
	layout := s.Board().Mines()

	require.NoError(t, s.Execute(ctx, "new width=5 height=4 mine_count=3 seed=99"))
	assert.Equal(t, layout, s.Board().Mines())

	require.NoError(t, s.Execute(ctx, "new mine_count=7 width=6 height=5"))
	assert.Equal(t, mines.GameParams{Width: 6, Height: 5, MineCount: 7}, s.Board().Params())
}

func TestNewGameKeyValueErrors(t *testing.T) {
	s, _ := newSession(t)
	ctx := context.Background()

	err := s.Execute(ctx, "new width=6 height=5 mine_count=4 colour=red")
	var multi schema.MultiError
	require.ErrorAs(t, err, &multi)
	assert.Contains(t, multi, "colour")

	err = s.Execute(ctx, "new width=6")
	assert.Error(t, err)

	err = s.Execute(ctx, "new width=6 5 4")
	assert.ErrorContains(t, err, "expected key=value")

	assert.Nil(t, s.Board())
}

func TestPrintJSON(t *testing.T) {
	s, out := newSession(t)
	withBoard(t, s, 2, 2, mines.Point{X: 1, Y: 1})
	out.Reset()

	require.NoError(t, s.Execute(context.Background(), "print json"))

	var got struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		Cells  [][]struct {
			State string `json:"state"`
		} `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Width)
	assert.Len(t, got.Cells, 2)
	assert.Equal(t, "hidden", got.Cells[1][1].State)
}

func TestHintAndSolve(t *testing.T) {
	s, out := newSession(t)
	withBoard(t, s, 4, 3, mines.Point{X: 0, Y: 0}, mines.Point{X: 3, Y: 0})
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "hint"))
	assert.Contains(t, out.String(), "no hint")

	require.NoError(t, s.Execute(ctx, "reveal 0 2"))
	out.Reset()
	require.NoError(t, s.Execute(ctx, "hint"))
	assert.True(t, strings.HasPrefix(out.String(), "hint: reveal (2, 0)"), out.String())

	out.Reset()
	require.NoError(t, s.Execute(ctx, "solve"))
	assert.Contains(t, out.String(), "solver made 4 moves")
	assert.Contains(t, out.String(), "you won")
	assert.Equal(t, mines.Won, s.Board().Outcome())
}

func TestElapsed(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	s, out := newSession(t)
	s.now = c.now
	withBoard(t, s, 3, 1, mines.Point{X: 0, Y: 0})
	ctx := context.Background()

	c.t = c.t.Add(time.Minute)
	assert.Zero(t, s.Elapsed())

	require.NoError(t, s.Execute(ctx, "reveal 2 0"))
	c.t = c.t.Add(42 * time.Second)
	assert.Equal(t, 42*time.Second, s.Elapsed())

	require.NoError(t, s.Execute(ctx, "mark 0 0"))
	assert.Contains(t, out.String(), "you won in 42s")

	c.t = c.t.Add(time.Hour)
	assert.Equal(t, 42*time.Second, s.Elapsed())
}

func TestJournal(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	s := New(Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Journal: journal.NewWithLogger(logger),
		Out:     &out,
	})
	withBoard(t, s, 3, 3, mines.Point{X: 0, Y: 0})
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "reveal 2 2"))
	require.NoError(t, s.Execute(ctx, "mark 0 0"))

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"game started", "move", "move", "game ended"}, messages)
	assert.Equal(t, "won", hook.LastEntry().Data["outcome"])
}

func TestRunTranscript(t *testing.T) {
	s, out := newSession(t)
	s.prompt = "> "
	in := strings.NewReader(strings.Join([]string{
		"new 3 3 1 7",
		"reveal nine 1",
		"",
		"help",
		"quit",
		"reveal 0 0",
	}, "\n"))

	require.NoError(t, s.Run(context.Background(), in))

	transcript := out.String()
	assert.Contains(t, transcript, "> new game 3x3 with 1 mines\n")
	assert.Contains(t, transcript, "error: x must be an int\n")
	assert.Contains(t, transcript, "  reveal X Y (also r)\n")
	assert.Equal(t, 5, strings.Count(transcript, "> "))
	assert.False(t, s.Board().Started())
}

func TestRunEndsAtEOF(t *testing.T) {
	s, out := newSession(t)
	require.NoError(t, s.Run(context.Background(), strings.NewReader("new easy\nprint\n")))
	assert.Equal(t, 2, strings.Count(out.String(), "mines: 10  remaining: 10"))
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newSession(t)
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, r)
	}()

	_, err := io.WriteString(w, "new easy\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
