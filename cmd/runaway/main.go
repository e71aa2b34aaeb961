// runaway is a terminal arcade game: chase the wandering pickup around the
// arena and stay clear of the obstacles.
//
// Usage:
//
//	runaway list              - List available variants
//	runaway play [variant]    - Play a variant (default: runaway)
//	runaway menu              - Pick a variant interactively
//	runaway config [variant]  - Print the effective config as YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--debug               - Enable debug logging
//	--trace <path>        - Write a per-tick CSV trace
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/runaway/internal/games/runaway"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
	flagTrace      string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line and always tears down what setup opened.
func run() error {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error("command failed", "err", err)
	}
	// Cobra skips post-run hooks when a command fails, so close here.
	if terr := teardown(); terr != nil && err == nil {
		err = terr
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "runaway",
	Short: "Runaway - catch the pickup, dodge the obstacles",
	Long: `Runaway is a small real-time arcade game for the terminal.

Steer around the arena, catch the wandering pickup for a point
and avoid the obstacles, which cost a point each. Reach the target score to
win; your time is the result.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  config   - Print the effective configuration

Examples:
  runaway play
  runaway play runaway_swarm --difficulty hard
  runaway menu --seed 42
  runaway config --config ./my-runaway.yaml
  runaway play --log-file runaway.log --debug --trace trace.csv`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagTrace, "trace", "", "Write a per-tick CSV trace to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
