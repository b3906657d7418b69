package main

import (
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/shell"
	"github.com/vancomm/minesweeper/internal/solver"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging(w io.Writer, cfg *config.Config) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.Level(),
	})
	if cfg.Development || config.Development() {
		handler = tint.NewHandler(w, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)
	mines.Log = logger

	solver.Log.SetOutput(w)
	solver.Log.SetLevel(logrus.WarnLevel)
	if cfg.Development {
		solver.Log.SetLevel(logrus.DebugLevel)
		solver.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	return logger
}

// gameParams picks the board from the flags. Any of --width, --height or
// --mines overrides the matching value of the preset.
func gameParams(flags *pflag.FlagSet, cfg *config.Config) (mines.GameParams, string, error) {
	params, err := mines.Preset(cfg.Difficulty)
	if err != nil {
		return mines.GameParams{}, "", err
	}
	preset := cfg.Difficulty

	for name, field := range map[string]*int{
		"width":  &params.Width,
		"height": &params.Height,
		"mines":  &params.MineCount,
	} {
		if !flags.Changed(name) {
			continue
		}
		if *field, err = flags.GetInt(name); err != nil {
			return mines.GameParams{}, "", err
		}
		preset = ""
	}
	return params, preset, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	logger := setupLogging(cmd.ErrOrStderr(), cfg)

	j, err := journal.New(cfg.Journal.Options())
	if err != nil {
		return err
	}

	params, preset, err := gameParams(flags, cfg)
	if err != nil {
		return err
	}
	var seed *uint64
	if flags.Changed("seed") {
		s, err := flags.GetUint64("seed")
		if err != nil {
			return err
		}
		seed = &s
	}

	s := shell.New(shell.Options{
		Logger:  logger,
		Journal: j,
		Out:     cmd.OutOrStdout(),
		Styled:  !cfg.Plain,
		Prompt:  "> ",
		Rand:    createRand(),
	})
	if err := s.NewGame(params, preset, seed); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `type "help" for the list of commands`)

	return s.Run(cmd.Context(), cmd.InOrStdin())
}
