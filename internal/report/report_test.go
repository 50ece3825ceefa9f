package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"snipvet/internal/execute"
	"snipvet/internal/syntax"
)

func TestWriteSyntaxPass(t *testing.T) {
	var b strings.Builder
	WriteSyntax(&b, syntax.Result{Pass: true, Total: 4, Checked: 3})

	out := b.String()
	assert.Contains(t, out, "Found 4 Go code blocks")
	assert.Contains(t, out, "All 4 Go code blocks passed the syntax check")
}

func TestWriteSyntaxFailure(t *testing.T) {
	var b strings.Builder
	WriteSyntax(&b, syntax.Result{
		Total:       4,
		Checked:     2,
		FailedIndex: 2,
		Err:         "expected ')', found '{'",
		Preview:     "func Broken( {",
	})

	out := b.String()
	assert.Contains(t, out, "Block 2: SYNTAX ERROR - expected ')', found '{'")
	assert.Contains(t, out, "Block content preview: func Broken( {...")
	assert.NotContains(t, out, "passed the syntax check")
}

func TestWriteExecution(t *testing.T) {
	var b strings.Builder
	WriteExecution(&b,
		[]execute.BlockResult{
			{Index: 1, Status: execute.StatusExecuted},
			{Index: 2, Status: execute.StatusSkipped, Detail: `matched "exec.Command("`},
			{Index: 3, Status: execute.StatusRuntimeError, Detail: "undefined: Double"},
			{Index: 4, Status: execute.StatusSyntaxError, Detail: "expected declaration"},
		},
		[]execute.ProbeResult{
			{Symbol: "Square", Status: execute.ProbeOk, Value: 25},
			{Symbol: "SumReducer", Status: execute.ProbeError, Detail: "wrong argument count"},
			{Symbol: "MapWords", Status: execute.ProbeNotFound},
		})

	out := b.String()
	assert.Contains(t, out, "Found 4 Go code blocks")
	assert.Contains(t, out, "Block 1: EXECUTED")
	assert.Contains(t, out, `Block 2: SKIPPED (matched "exec.Command(")`)
	assert.Contains(t, out, "Block 3: ERROR - undefined: Double")
	assert.Contains(t, out, "Block 4: SYNTAX ERROR - expected declaration")
	assert.Contains(t, out, "Square: OK (result: 25)")
	assert.Contains(t, out, "SumReducer: ERROR - wrong argument count")
	assert.Contains(t, out, "MapWords: NOT FOUND")
}

func TestWriteExecutionNoProbes(t *testing.T) {
	var b strings.Builder
	WriteExecution(&b, nil, nil)
	assert.NotContains(t, b.String(), "Probing")
}
