package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"snipvet/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "snipvet",
	Short: "snipvet - fenced snippet validation for book chapters",
	Long: `snipvet validates the Go code embedded in book chapters without
running the full document build.

It extracts every fenced {go} block from a chapter and checks it in one
of two modes:

  syntax  structural parse of every block, fail-fast on the first error
  exec    best-effort interpretation of every safe block into a shared
          environment, then probes of the chapter's teaching functions
          with known arguments

Blocks that contain known process-spawning or worker-pool idioms are
never executed; they are reported as skipped.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")

	rootCmd.AddCommand(syntaxCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(watchCmd)
}

// chapterArg resolves the chapter path: explicit argument first, then config.
func chapterArg(cfg config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Chapter
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
