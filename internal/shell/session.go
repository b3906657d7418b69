package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/view"
)

var (
	ErrQuit   = errors.New("quit")
	ErrNoGame = errors.New("no game in progress, start one with new")
)

type Options struct {
	Logger  *slog.Logger
	Journal *journal.Journal
	Out     io.Writer
	Styled  bool
	Prompt  string

	// Rand places mines for games started without a seed.
	Rand *rand.Rand
	Now  func() time.Time
}

// Session owns at most one board at a time and turns shell lines into
// calls on it. A Session is not safe for concurrent use; Run serializes
// everything onto one goroutine.
type Session struct {
	log     *slog.Logger
	journal *journal.Journal
	out     io.Writer
	styled  bool
	prompt  string
	rand    *rand.Rand
	now     func() time.Time

	board     *mines.Board
	preset    string
	gameID    uuid.UUID
	startedAt time.Time
	endedAt   time.Time

	handler middleware.Handler
}

func New(opts Options) *Session {
	s := &Session{
		log:     opts.Logger,
		journal: opts.Journal,
		out:     opts.Out,
		styled:  opts.Styled,
		prompt:  opts.Prompt,
		rand:    opts.Rand,
		now:     opts.Now,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.handler = middleware.Wrap(
		middleware.HandlerFunc(s.dispatch),
		middleware.Recover(s.log),
		middleware.Logging(s.log),
	)
	return s
}

// Board returns the current board, or nil before the first game.
func (s *Session) Board() *mines.Board {
	return s.board
}

// NewGame replaces the current board. A non-nil seed makes the mine layout
// reproducible. On error the current game is kept.
func (s *Session) NewGame(params mines.GameParams, preset string, seed *uint64) error {
	r := s.rand
	if seed != nil {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}
	b, err := mines.New(params, r)
	if err != nil {
		return err
	}
	s.begin(b, preset, seed)
	return s.Render()
}

func (s *Session) begin(b *mines.Board, preset string, seed *uint64) {
	s.board = b
	s.preset = preset
	s.gameID = uuid.New()
	s.startedAt, s.endedAt = time.Time{}, time.Time{}

	s.log.Info(
		"new game",
		slog.String("game", s.gameID.String()),
		slog.String("params", b.Params().Seed()),
		slog.String("preset", preset),
	)
	s.journal.GameStarted(s.gameID, b.Params(), preset, seed)
	fmt.Fprintf(s.out, "new game %dx%d with %d mines\n", b.Width(), b.Height(), b.MineCount())
}

func (s *Session) current() (*mines.Board, error) {
	if s.board == nil {
		return nil, ErrNoGame
	}
	return s.board, nil
}

// Elapsed is the time since the first reveal, frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.startedAt.IsZero():
		return 0
	case !s.endedAt.IsZero():
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.now().Sub(s.startedAt)
	}
}

// track notes the clock transitions caused by a move: the timer starts
// with the first reveal and stops when the outcome becomes terminal.
func (s *Session) track(wasStarted bool) {
	b := s.board
	if !wasStarted && b.Started() {
		s.startedAt = s.now()
	}
	if b.Outcome().Terminal() && s.endedAt.IsZero() {
		s.endedAt = s.now()
		if s.startedAt.IsZero() {
			s.startedAt = s.endedAt
		}
		s.log.Info(
			"game over",
			slog.String("game", s.gameID.String()),
			slog.String("outcome", b.Outcome().String()),
			slog.Duration("elapsed", s.Elapsed()),
		)
		s.journal.GameEnded(s.gameID, b.Outcome(), s.Elapsed())
	}
}

func (s *Session) Render() error {
	b, err := s.current()
	if err != nil {
		return err
	}
	return view.Text(s.out, view.New(b, s.Elapsed()), s.styled)
}

// announce prints the end of game message, if there is one.
func (s *Session) announce() {
	b := s.board
	switch b.Outcome() {
	case mines.Lost:
		p, _ := b.Detonated()
		fmt.Fprintf(s.out, "boom! there was a mine at %s, game over\n", p)
	case mines.Won:
		fmt.Fprintf(s.out, "you won in %ds\n", int64(s.Elapsed()/time.Second))
	}
}

// Execute runs a single shell line. Blank lines do nothing. ErrQuit means
// the session should end; any other error is a rejected command.
func (s *Session) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd := middleware.Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}
	if s.board != nil {
		ctx = middleware.WithGameID(ctx, s.gameID)
	}
	return s.handler.Handle(ctx, cmd)
}

func (s *Session) dispatch(_ context.Context, cmd middleware.Command) error {
	c, ok := commandTable[cmd.Name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", cmd.Name)
	}
	if n := len(cmd.Args); n < c.minArgs || n > c.maxArgs {
		return fmt.Errorf("invalid number of arguments, usage: %s", c.usage)
	}
	return c.run(s, cmd.Args)
}
