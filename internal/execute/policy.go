package execute

import "strings"

// Policy decides which blocks are unsafe to execute in-harness.
type Policy interface {
	// Skip reports whether the trimmed block text must not be executed,
	// and the reason it matched.
	Skip(text string) (bool, string)
}

// SubstringPolicy skips blocks containing any of a fixed set of literal
// idioms. The check is textual containment, not semantic analysis: safe code
// that merely mentions a literal is skipped too, which is accepted; letting a
// known unsafe idiom through is not.
type SubstringPolicy struct {
	Literals []string
}

// Skip implements Policy.
func (p SubstringPolicy) Skip(text string) (bool, string) {
	for _, lit := range p.Literals {
		if strings.Contains(text, lit) {
			return true, lit
		}
	}
	return false, ""
}

// DefaultSkipLiterals lists the known process-spawning and worker-pool
// invocation idioms that must not run inside the harness. Operators extend
// the list with further literals via config, not patterns.
func DefaultSkipLiterals() []string {
	return []string{
		"exec.Command(",
		"exec.CommandContext(",
		"pool.Submit(",
		"workers.Run(",
		"errgroup.WithContext(",
	}
}

// Preprocessor reduces a surviving block to its executable prefix before the
// block is handed to the environment.
type Preprocessor interface {
	EffectiveSource(text string) string
}

// DefaultGuard is the entry-point guard literal: everything from the first
// occurrence onward is the chapter's own driver section.
const DefaultGuard = "func main()"

// GuardStripper truncates a block at its entry-point guard so function and
// type definitions are captured into the environment while the chapter's
// demonstration calls are not replayed.
type GuardStripper struct {
	Guard string
}

// EffectiveSource implements Preprocessor.
func (g GuardStripper) EffectiveSource(text string) string {
	guard := g.Guard
	if guard == "" {
		guard = DefaultGuard
	}
	if i := strings.Index(text, guard); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
