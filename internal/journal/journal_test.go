package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestEvents(t *testing.T) {
	logger, hook := test.NewNullLogger()
	j := NewWithLogger(logger)
	id := uuid.New()
	seed := uint64(42)

	j.GameStarted(id, mines.Easy, "easy", &seed)
	j.Move(id, "reveal", mines.Point{X: 3, Y: 4}, "continuing", 10)
	j.GameEnded(id, mines.Lost, 1500*time.Millisecond)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, "game started", entries[0].Message)
	assert.Equal(t, "10:10:10", entries[0].Data["params"])
	assert.Equal(t, "easy", entries[0].Data["preset"])
	assert.Equal(t, uint64(42), entries[0].Data["seed"])

	assert.Equal(t, "move", entries[1].Message)
	assert.Equal(t, 3, entries[1].Data["x"])
	assert.Equal(t, 4, entries[1].Data["y"])
	assert.Equal(t, "continuing", entries[1].Data["result"])

	assert.Equal(t, "game ended", entries[2].Message)
	assert.Equal(t, "lost", entries[2].Data["outcome"])
	assert.Equal(t, int64(1500), entries[2].Data["elapsed_ms"])

	for _, e := range entries {
		assert.Equal(t, logrus.InfoLevel, e.Level)
		assert.Equal(t, id.String(), e.Data["game"])
	}
}

func TestGameStartedWithoutSeed(t *testing.T) {
	logger, hook := test.NewNullLogger()
	NewWithLogger(logger).GameStarted(uuid.New(), mines.Hard, "", nil)

	require.NotNil(t, hook.LastEntry())
	assert.NotContains(t, hook.LastEntry().Data, "seed")
	assert.NotContains(t, hook.LastEntry().Data, "preset")
}

func TestNilJournal(t *testing.T) {
	var j *Journal
	assert.NotPanics(t, func() {
		j.GameStarted(uuid.New(), mines.Easy, "easy", nil)
		j.Move(uuid.New(), "mark", mines.Point{}, "flag", 9)
		j.GameEnded(uuid.New(), mines.Won, time.Second)
	})
}

func TestFileJournal(t *testing.T) {
	file := filepath.Join(t.TempDir(), "journal.log")
	j, err := New(Options{File: file, MaxSize: 1, MaxBackups: 1, MaxAge: 1})
	require.NoError(t, err)

	id := uuid.New()
	j.GameStarted(id, mines.Intermediate, "intermediate", nil)
	j.GameEnded(id, mines.Won, time.Minute)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"game started"`)
	assert.Contains(t, lines[0], id.String())
	assert.Contains(t, lines[1], `"outcome":"won"`)
}

func TestDisabledJournal(t *testing.T) {
	j, err := New(Options{})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		j.Move(uuid.New(), "reveal", mines.Point{}, "noop", 1)
	})
}
