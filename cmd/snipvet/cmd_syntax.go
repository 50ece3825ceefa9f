package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snipvet/internal/config"
	"snipvet/internal/extract"
	"snipvet/internal/report"
	"snipvet/internal/syntax"
)

// syntaxCmd parse-checks every block without executing anything.
var syntaxCmd = &cobra.Command{
	Use:   "syntax [chapter]",
	Short: "Parse-check every fenced block in a chapter",
	Long: `Extracts every fenced {go} block from the chapter and attempts a
structural parse of each one, in document order. Stops at the first block
that fails and reports its index, the parser diagnostic, and a preview of
the offending content.

Exits non-zero if any block fails to parse or the chapter cannot be read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSyntax,
}

func runSyntax(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	chapter := chapterArg(cfg, args)
	logger.Debug("syntax check", zap.String("chapter", chapter))

	source, err := extract.Load(chapter)
	if err != nil {
		return err
	}

	res := syntax.Check(extract.Extract(source))
	report.WriteSyntax(cmd.OutOrStdout(), res)
	if !res.Pass {
		return fmt.Errorf("block %d failed the syntax check", res.FailedIndex)
	}
	return nil
}
