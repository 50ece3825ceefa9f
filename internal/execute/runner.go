package execute

import (
	"strconv"
	"strings"

	"snipvet/internal/extract"
	"snipvet/internal/syntax"
)

// Status classifies the outcome of one block.
type Status string

const (
	StatusExecuted     Status = "executed"
	StatusSkipped      Status = "skipped"
	StatusSyntaxError  Status = "syntax_error"
	StatusRuntimeError Status = "runtime_error"
)

// BlockResult records the outcome for one block, in block order.
type BlockResult struct {
	Index  int
	Status Status
	Detail string
}

// Probe is one predefined invocation used to sanity-check a symbol the
// chapter is expected to define. The table is maintained by the operator,
// not discovered from the document.
type Probe struct {
	Symbol string `yaml:"symbol"`
	Call   string `yaml:"call"`
}

// ProbeStatus classifies the outcome of one probe.
type ProbeStatus string

const (
	ProbeOk       ProbeStatus = "ok"
	ProbeError    ProbeStatus = "error"
	ProbeNotFound ProbeStatus = "not_found"
)

// ProbeResult records the outcome of probing one symbol.
type ProbeResult struct {
	Symbol string
	Status ProbeStatus
	Value  any
	Detail string
}

// Run processes blocks strictly in document order against env, then
// evaluates every probe against the final environment. A block failure is
// recorded and the loop continues; no bindings are rolled back. Probing
// never panics out of the run.
func Run(env *Env, blocks []extract.Block, policy Policy, pre Preprocessor, probes []Probe) ([]BlockResult, []ProbeResult) {
	results := make([]BlockResult, 0, len(blocks))
	for _, b := range blocks {
		results = append(results, runBlock(env, b, policy, pre))
	}

	probed := make([]ProbeResult, 0, len(probes))
	for _, p := range probes {
		probed = append(probed, runProbe(env, p))
	}
	return results, probed
}

func runBlock(env *Env, b extract.Block, policy Policy, pre Preprocessor) BlockResult {
	code := strings.TrimSpace(b.Text)
	if code == "" {
		return BlockResult{Index: b.Index, Status: StatusSkipped, Detail: "empty block"}
	}

	if policy != nil {
		if skip, why := policy.Skip(code); skip {
			return BlockResult{Index: b.Index, Status: StatusSkipped, Detail: "matched " + strconv.Quote(why)}
		}
	}

	if pre != nil {
		code = pre.EffectiveSource(code)
		if strings.TrimSpace(code) == "" {
			return BlockResult{Index: b.Index, Status: StatusSkipped, Detail: "nothing outside entry guard"}
		}
	}

	if err := syntax.Parse(code); err != nil {
		return BlockResult{Index: b.Index, Status: StatusSyntaxError, Detail: err.Error()}
	}
	if _, err := env.Eval(code); err != nil {
		return BlockResult{Index: b.Index, Status: StatusRuntimeError, Detail: err.Error()}
	}
	return BlockResult{Index: b.Index, Status: StatusExecuted}
}

func runProbe(env *Env, p Probe) ProbeResult {
	if !env.Lookup(p.Symbol) {
		return ProbeResult{Symbol: p.Symbol, Status: ProbeNotFound}
	}
	v, err := env.Eval(p.Call)
	if err != nil {
		return ProbeResult{Symbol: p.Symbol, Status: ProbeError, Detail: err.Error()}
	}
	res := ProbeResult{Symbol: p.Symbol, Status: ProbeOk}
	if v.IsValid() && v.CanInterface() {
		res.Value = v.Interface()
	}
	return res
}
