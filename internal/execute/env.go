// Package execute interprets extracted blocks against one accumulating
// evaluation environment and probes the symbols they define.
package execute

import (
	"fmt"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Env is the evaluation environment for one validation run: a single
// persistent interpreter whose bindings accumulate across blocks. Bindings
// made by an earlier block are visible to every later block and to probes,
// and are never rolled back when a later block fails.
type Env struct {
	interp *interp.Interpreter
}

// NewEnv creates an empty environment with the interpreter stdlib loaded,
// so chapter snippets can import packages like fmt and strings.
func NewEnv() (*Env, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load interpreter stdlib: %w", err)
	}
	return &Env{interp: i}, nil
}

// Eval interprets src in the shared environment. Interpreter panics are
// converted into errors so one block or probe cannot unwind the run.
func (e *Env) Eval(src string) (v reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("interpreter panic: %v", r)
		}
	}()
	return e.interp.Eval(src)
}

// Lookup reports whether name is bound in the environment.
func (e *Env) Lookup(name string) bool {
	_, err := e.Eval(name)
	return err == nil
}
