package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/games/runaway"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way 'play' does (config file,
difficulty preset, variant adjustments) and print it as YAML.

The output is a valid config file and can be saved and edited:
  runaway config > ~/.arcade/configs/runaway.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := runaway.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}

	cfg, source, err := runaway.LoadConfig(variant)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config is not playable", "source", source, "err", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
