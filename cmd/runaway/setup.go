package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/games/runaway"
	"github.com/vovakirdan/runaway/internal/telemetry"
)

var (
	logger    *log.Logger
	logCloser io.Closer
	trace     *telemetry.TraceWriter
)

// setup builds the logger and trace, then hands the global flags to the
// game package before any game is created.
func setup(_ *cobra.Command, _ []string) error {
	out := io.Writer(os.Stderr)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		out = f
		logCloser = f
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "runaway",
		Level:           level,
	})

	// Game events are only worth logging where they cannot garble the
	// alternate screen.
	if flagLogFile != "" {
		runaway.SetLogger(logger)
	}

	runaway.SetConfigPath(flagConfig)
	runaway.SetDifficultyPreset(flagDifficulty)

	t, err := telemetry.CreateTraceFile(flagTrace)
	if err != nil {
		return err
	}
	if t != nil {
		trace = t
		runaway.SetDisplay(trace)
		logger.Debug("tracing ticks", "path", flagTrace)
	}
	return nil
}

// teardown flushes the trace and closes the log file. It runs whether or
// not the command succeeded and is safe to call more than once.
func teardown() error {
	var traceErr error
	if trace != nil {
		traceErr = trace.Close()
		logger.Info("trace written", "path", flagTrace, "rows", trace.Rows(), "err", traceErr)
		trace = nil
	}
	if logCloser != nil {
		//nolint:errcheck // Nothing left to report to
		logCloser.Close()
		logCloser = nil
	}
	return traceErr
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
