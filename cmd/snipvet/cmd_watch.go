package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snipvet/internal/config"
	"snipvet/internal/extract"
	"snipvet/internal/report"
	"snipvet/internal/syntax"
	"snipvet/internal/watch"
)

// watchCmd keeps re-running the syntax check while the chapter is edited.
var watchCmd = &cobra.Command{
	Use:   "watch [chapter]",
	Short: "Re-run the syntax check whenever the chapter changes",
	Long: `Runs the syntax check once, then watches the chapter file and
re-runs the check after every save. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatchCmd,
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	chapter := chapterArg(cfg, args)

	run := func() {
		source, err := extract.Load(chapter)
		if err != nil {
			logger.Error("read chapter", zap.Error(err))
			return
		}
		report.WriteSyntax(cmd.OutOrStdout(), syntax.Check(extract.Extract(source)))
	}
	run()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching chapter", zap.String("chapter", chapter))
	err = watch.New(chapter, run, logger).Watch(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
