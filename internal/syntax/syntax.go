// Package syntax performs structural parse checks on extracted blocks.
// It never executes code, so it is safe on any input.
package syntax

import (
	"go/parser"
	"go/token"
	"strings"

	"snipvet/internal/extract"
)

// previewLen bounds the content preview attached to a failure.
const previewLen = 100

// Result is the outcome of one syntax pass over a block sequence.
type Result struct {
	Pass        bool
	Total       int    // blocks in the sequence
	Checked     int    // parse attempts actually performed
	FailedIndex int    // 1-based index of the offending block when !Pass
	Err         string // parser diagnostic for the offending block
	Preview     string // first bytes of the trimmed offending content
}

// Check parses every block in order and stops at the first failure.
// Whitespace-only blocks are trivially valid and not counted as attempts.
func Check(blocks []extract.Block) Result {
	res := Result{Pass: true, Total: len(blocks)}
	for _, b := range blocks {
		code := strings.TrimSpace(b.Text)
		if code == "" {
			continue
		}
		res.Checked++
		if err := Parse(code); err != nil {
			return Result{
				Total:       len(blocks),
				Checked:     res.Checked,
				FailedIndex: b.Index,
				Err:         err.Error(),
				Preview:     preview(code),
			}
		}
	}
	return res
}

// Parse checks a single snippet for structural validity. Chapter snippets
// usually omit the package clause, so the snippet is parsed the way the
// interpreter would see it, with a function-body fallback for snippets made
// of bare statements. The declaration-level diagnostic wins when both fail.
func Parse(code string) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "block.go", wrap(code), parser.DeclarationErrors); err == nil {
		return nil
	} else if _, stmtErr := parser.ParseFile(fset, "block.go", wrapBody(code), 0); stmtErr == nil {
		return nil
	} else {
		return err
	}
}

func wrap(code string) string {
	if strings.Contains(code, "package main") {
		return code
	}
	return "package main\n\n" + code
}

func wrapBody(code string) string {
	return "package main\n\nfunc _() {\n" + code + "\n}\n"
}

func preview(code string) string {
	if len(code) <= previewLen {
		return code
	}
	return code[:previewLen]
}
