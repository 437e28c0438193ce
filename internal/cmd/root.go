package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/raidscope/raidscope/internal/config"
	"github.com/raidscope/raidscope/internal/engine"
	"github.com/raidscope/raidscope/internal/logging"
	"github.com/raidscope/raidscope/internal/model"
	"github.com/raidscope/raidscope/internal/parse"
)

var (
	cfgFile   string
	logLevel  string
	lastHours float64
)

var rootCmd = &cobra.Command{
	Use:   "raidscope",
	Short: "Segment raid combat logs into encounters and rank the actors",
	Long: `raidscope converts raw combat-log text into discrete encounters,
each with a boss/add/player roster, per-actor damage events, and DPS.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		logging.Init(logging.ParseLevel(logLevel))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $RAIDSCOPE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Float64Var(&lastHours, "last-hours", 0, "only ingest lines from the last N hours (0 disables)")
}

func loadOptions() (engine.Options, error) {
	cfg, path, err := config.Load(cfgFile)
	if err != nil {
		return engine.Options{}, err
	}
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}
	return cfg.EngineOptions(), nil
}

// readLines loads and tokenizes a whole log file, applying the
// last-hours ingestion cutoff when set.
func readLines(path string) ([]model.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	lines, err := parse.TokenizeAll(f)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	tf := engine.NewTimeFilterLastHours(lastHours, time.Now())
	return tf.FilterLines(lines), nil
}
