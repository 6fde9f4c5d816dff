package lemons

import (
	"sort"
)

// Env holds the variable bindings of a session. Each binding is the
// unevaluated right-hand side of the latest assignment to the name, so a
// reference sees the current values of the variables it mentions.
//
// Env is not safe for concurrent use.
type Env struct {
	vars   map[string]*Node
	active map[string]bool
}

func NewEnv() *Env {
	return &Env{
		vars:   make(map[string]*Node),
		active: make(map[string]bool),
	}
}

// Set binds name to a copy of expr, replacing any previous binding.
func (e *Env) Set(name string, expr *Node) {
	e.vars[name] = expr.Copy()
}

func (e *Env) Lookup(name string) (*Node, bool) {
	n, ok := e.vars[name]
	return n, ok
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close drops every binding.
func (e *Env) Close() {
	for name := range e.vars {
		delete(e.vars, name)
	}
}
