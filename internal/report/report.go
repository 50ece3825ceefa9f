// Package report renders block and probe outcomes as human-readable lines,
// one per failure or result, so a run is diagnosable without re-running it.
package report

import (
	"fmt"
	"io"

	"snipvet/internal/execute"
	"snipvet/internal/syntax"
)

// WriteSyntax prints the outcome of a syntax pass.
func WriteSyntax(w io.Writer, res syntax.Result) {
	fmt.Fprintf(w, "Found %d Go code blocks\n", res.Total)
	if res.Pass {
		fmt.Fprintf(w, "All %d Go code blocks passed the syntax check\n", res.Total)
		return
	}
	fmt.Fprintf(w, "  Block %d: SYNTAX ERROR - %s\n", res.FailedIndex, res.Err)
	fmt.Fprintf(w, "    Block content preview: %s...\n", res.Preview)
}

// WriteExecution prints per-block outcomes followed by per-symbol probe
// outcomes.
func WriteExecution(w io.Writer, blocks []execute.BlockResult, probes []execute.ProbeResult) {
	fmt.Fprintf(w, "Found %d Go code blocks\n", len(blocks))
	for _, b := range blocks {
		switch b.Status {
		case execute.StatusExecuted:
			fmt.Fprintf(w, "  Block %d: EXECUTED\n", b.Index)
		case execute.StatusSkipped:
			fmt.Fprintf(w, "  Block %d: SKIPPED (%s)\n", b.Index, b.Detail)
		case execute.StatusSyntaxError:
			fmt.Fprintf(w, "  Block %d: SYNTAX ERROR - %s\n", b.Index, b.Detail)
		case execute.StatusRuntimeError:
			fmt.Fprintf(w, "  Block %d: ERROR - %s\n", b.Index, b.Detail)
		}
	}

	if len(probes) == 0 {
		return
	}
	fmt.Fprintf(w, "\nProbing teaching functions:\n")
	for _, p := range probes {
		switch p.Status {
		case execute.ProbeOk:
			fmt.Fprintf(w, "  %s: OK (result: %v)\n", p.Symbol, p.Value)
		case execute.ProbeError:
			fmt.Fprintf(w, "  %s: ERROR - %s\n", p.Symbol, p.Detail)
		case execute.ProbeNotFound:
			fmt.Fprintf(w, "  %s: NOT FOUND\n", p.Symbol)
		}
	}
}
