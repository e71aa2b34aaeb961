package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc leaves a game for the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  runaway menu
  runaway menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}

		cfg = result.Config
		toMenu, err := playSession(result.GameID, cfg)
		if err != nil {
			// Back to the menu; another variant may still start.
			logger.Error("game failed", "game", result.GameID, "err", err)
			continue
		}
		if !toMenu {
			return nil
		}
	}
}
