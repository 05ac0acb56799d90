package frothy

import "sort"

// Scope provides read access to variable bindings.  Builtins receive the
// current environment as a Scope.
type Scope interface {
	// Get returns the value bound to name.
	Get(name string) (Value, bool)
	// Lookup returns the value bound to name or an UndefinedVariable
	// EvalError.
	Lookup(name string) (Value, error)
}

// Env is the single global namespace of an interpreter.  There are no nested
// scopes: every assignment overwrites the one binding for its name.
type Env struct {
	vars map[string]Value
}

var _ Scope = (*Env)(nil)

// NewEnv returns an empty Env.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Get implements Scope.
func (env *Env) Get(name string) (Value, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Lookup implements Scope.
func (env *Env) Lookup(name string) (Value, error) {
	v, ok := env.vars[name]
	if !ok {
		return nil, &EvalError{Kind: UndefinedVariable, Name: name}
	}
	return v, nil
}

// Put binds name to v, replacing any existing binding.
func (env *Env) Put(name string, v Value) {
	env.vars[name] = v
}

// Len returns the number of bound names.
func (env *Env) Len() int {
	return len(env.vars)
}

// Names returns the bound names in sorted order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.vars))
	for name := range env.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
