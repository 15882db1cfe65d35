/*
File   : minipylang/env/environment.go
Package: env

Package env implements MiniPyLang's single global variable environment
(spec.md §4.4). Unlike the teacher's scope.Scope, there is no parent
chain: if/while blocks never push a nested scope, so Environment is
simply a flat name->Value table with the handful of operations the
interpreter and REPL need.
*/
package env

import "github.com/akashmaji946/minipylang/value"

// Environment is the single global binding table for a MiniPyLang
// program or REPL session.
type Environment struct {
	vars map[string]value.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Get looks up a binding, reporting whether it exists.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set inserts or overwrites a binding.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Delete removes a binding, reporting whether it had existed.
func (e *Environment) Delete(name string) bool {
	if _, ok := e.vars[name]; !ok {
		return false
	}
	delete(e.vars, name)
	return true
}

// Snapshot returns a copy of all current bindings, used by the REPL's
// `vars` meta-command. The copy is a map, so it carries no order.
func (e *Environment) Snapshot() map[string]value.Value {
	out := make(map[string]value.Value, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// Reset wipes every binding, used by the REPL's `clear` meta-command.
func (e *Environment) Reset() {
	e.vars = make(map[string]value.Value)
}

// Len reports the number of bound names.
func (e *Environment) Len() int { return len(e.vars) }
