package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/mines"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Play minesweeper in the terminal",
		Long: `Play minesweeper in the terminal.

Without a subcommand a game is started right away.

Examples:
  minesweeper --difficulty hard
  minesweeper play --width 16 --height 16 --mines 40 --seed 7
  MINES_JOURNAL_FILE=games.log minesweeper`,
		SilenceUsage: true,
		RunE:         runPlay,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("difficulty", "d", "easy", "Preset board: easy, intermediate or hard")
	flags.Int("width", 0, "Board width, overrides the preset")
	flags.Int("height", 0, "Board height, overrides the preset")
	flags.Int("mines", 0, "Number of mines, overrides the preset")
	flags.Uint64("seed", 0, "Seed for a reproducible mine layout")
	flags.Bool("plain", false, "Draw the board without colours")
	flags.Bool("dev", false, "Development mode: human readable debug logs")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("journal", "", "Write a game journal to this file")
	flags.Int("journal-max-size", 10, "Rotate the journal after this many megabytes")
	flags.Int("journal-max-backups", 3, "Rotated journals to keep")
	flags.Int("journal-max-age", 28, "Days to keep rotated journals")
	flags.StringP("config", "c", "", "Config file path")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Start a game (default)",
			Args:  cobra.NoArgs,
			RunE:  runPlay,
		},
		&cobra.Command{
			Use:   "presets",
			Short: "List the difficulty presets",
			Args:  cobra.NoArgs,
			RunE:  runPresets,
		},
	)

	return rootCmd
}

func runPresets(cmd *cobra.Command, _ []string) error {
	for _, d := range mines.Presets() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-14s %dx%d, %d mines\n", d.Name, d.Width, d.Height, d.MineCount)
	}
	return nil
}
