// Package builtins implements the host-language procedures of spec §4.5
// and §6, plus the supplemental standard-library roster SPEC_FULL adds.
// Each builtin receives an already-evaluated argument vector and the
// calling environment, and either returns a Value or a categorized
// scmerr.
package builtins

import (
	"goscheme/internal/value"
)

// Register binds every builtin procedure into env under its public name.
// The driver calls this once against a fresh root environment; `reset`
// calls it again against a new one.
func Register(env *value.Environment) {
	registerCore(env)
	registerPredicates(env)
	registerLists(env)
	registerArithmetic(env)
	registerComparison(env)
	registerStrings(env)
	env.Define("gensym", value.NewBuiltin("gensym", biGensym))
}

func def(env *value.Environment, name string, fn value.BuiltinFunc) {
	env.Define(name, value.NewBuiltin(name, fn))
}
