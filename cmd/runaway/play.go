package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/games/runaway"
	"github.com/vovakirdan/runaway/internal/platform/tui"
	"github.com/vovakirdan/runaway/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: runaway).

Controls:
  Up/W       - Move forward
  Down/S     - Move backward
  Left/A     - Turn left
  Right/D    - Turn right
  R          - Play again (after winning)
  Esc        - Leave the game (back to the menu in 'runaway menu')
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer obstacles, larger catch radius
  normal - Config values as they are
  hard   - More obstacles, smaller catch radius, faster wanderers

Examples:
  runaway play
  runaway play runaway_swarm
  runaway play --difficulty easy
  runaway play --config ./my-runaway.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := runaway.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'runaway list' to see available games)", gameID)
	}

	_, err := playSession(gameID, runtimeConfig())
	return err
}

// playSession creates the game, runs it until the player leaves and logs
// how the session ended. It reports whether the player asked for the menu.
func playSession(gameID string, cfg core.RuntimeConfig) (bool, error) {
	if _, source, err := runaway.LoadConfig(gameID); err == nil {
		logger.Debug("config resolved", "game", gameID, "source", source, "difficulty", flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("creating game: %w", err)
	}

	final, err := tui.Run(game, cfg)
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}

	st := final.State()
	logger.Info("session ended",
		"game", gameID,
		"score", st.Score,
		"won", st.Won,
		"elapsed", st.Elapsed.Round(100*time.Millisecond),
		"restarts", final.Restarts(),
	)
	return final.WantsMenu(), nil
}
