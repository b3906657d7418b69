// Package journal records what happens in each game as JSON lines in a
// rotating log file. It is write-only: nothing ever reads a journal back.
package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Options struct {
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

type Journal struct {
	log *logrus.Logger
}

// New opens a journal writing to opts.File. With no file every event is
// discarded.
func New(opts Options) (*Journal, error) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	if opts.File == "" {
		return &Journal{log: log}, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano},
	})
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", opts.File, err)
	}
	log.AddHook(hook)

	return &Journal{log: log}, nil
}

// NewWithLogger wraps an existing logger.
func NewWithLogger(log *logrus.Logger) *Journal {
	return &Journal{log: log}
}

func (j *Journal) GameStarted(id uuid.UUID, params mines.GameParams, preset string, seed *uint64) {
	if j == nil {
		return
	}
	fields := logrus.Fields{
		"game":   id.String(),
		"params": params.Seed(),
	}
	if preset != "" {
		fields["preset"] = preset
	}
	if seed != nil {
		fields["seed"] = *seed
	}
	j.log.WithFields(fields).Info("game started")
}

func (j *Journal) Move(id uuid.UUID, kind string, p mines.Point, result string, remaining int) {
	if j == nil {
		return
	}
	j.log.WithFields(logrus.Fields{
		"game":      id.String(),
		"kind":      kind,
		"x":         p.X,
		"y":         p.Y,
		"result":    result,
		"remaining": remaining,
	}).Info("move")
}

func (j *Journal) GameEnded(id uuid.UUID, outcome mines.Outcome, elapsed time.Duration) {
	if j == nil {
		return
	}
	j.log.WithFields(logrus.Fields{
		"game":       id.String(),
		"outcome":    outcome.String(),
		"elapsed_ms": elapsed.Milliseconds(),
	}).Info("game ended")
}
