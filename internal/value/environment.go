package value

import (
	"github.com/google/uuid"

	"goscheme/internal/scmerr"
)

// Environment is one frame of the lexical-scope chain (spec §4.2): a
// binding map plus an optional parent. Pairs, environments, and closures
// form a potentially cyclic reference graph — a closure can capture a
// frame that binds its own name back to itself — so frames are plain
// garbage-collected Go values and cycles are the runtime's problem, not
// ours (spec §3's Ownership model, option (a): rely on a tracing
// collector, here Go's own).
type Environment struct {
	parent   *Environment
	bindings map[string]*Value
	id       uuid.UUID
}

// NewRoot creates a fresh top-level environment with no parent. The driver
// populates it with every built-in before running any user code.
func NewRoot() *Environment {
	return &Environment{bindings: make(map[string]*Value), id: uuid.New()}
}

// ID is the session epoch id, refreshed by the REPL's `reset` meta-command
// so diagnostic logs can distinguish sessions (spec §6).
func (e *Environment) ID() uuid.UUID { return e.id }

// Child creates a fresh empty frame whose parent is the receiver.
func (e *Environment) Child() *Environment {
	return &Environment{parent: e, bindings: make(map[string]*Value), id: uuid.New()}
}

// Lookup searches the current frame, then the parent chain.
func (e *Environment) Lookup(name string) (*Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, scmerr.Name("%s is not defined", name)
}

// Define binds name in the current frame, overwriting any prior entry for
// the same name in that frame. Parent frames are untouched.
func (e *Environment) Define(name string, v *Value) {
	e.bindings[name] = v
}
