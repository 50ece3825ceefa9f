package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snipvet/internal/config"
	"snipvet/internal/execute"
	"snipvet/internal/extract"
	"snipvet/internal/report"
)

// execCmd interprets the chapter's safe blocks and probes its symbols.
var execCmd = &cobra.Command{
	Use:   "exec [chapter]",
	Short: "Interpret a chapter's blocks and probe its teaching functions",
	Long: `Extracts every fenced {go} block, skips the ones matching the
unsafe-idiom denylist, and interprets the rest, in document order, into one
shared environment so later blocks see earlier definitions. Text from a
block's entry-point guard onward is discarded before interpretation.

After all blocks, the configured probe table is evaluated against the final
environment and each symbol is reported as OK, ERROR, or NOT FOUND.

This is a diagnostic mode: individual block or probe failures are reported
but only an unreadable chapter flips the exit code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	chapter := chapterArg(cfg, args)
	logger.Debug("execution check",
		zap.String("chapter", chapter),
		zap.Int("probes", len(cfg.Probes)))

	source, err := extract.Load(chapter)
	if err != nil {
		return err
	}

	env, err := execute.NewEnv()
	if err != nil {
		return err
	}

	blocks, probes := execute.Run(env,
		extract.Extract(source),
		execute.SubstringPolicy{Literals: cfg.SkipLiterals},
		execute.GuardStripper{Guard: cfg.EntryGuard},
		cfg.Probes)

	out := cmd.OutOrStdout()
	report.WriteExecution(out, blocks, probes)
	fmt.Fprintf(out, "\nChapter code validation completed\n")
	return nil
}
