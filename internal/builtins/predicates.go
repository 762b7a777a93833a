package builtins

import (
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func registerPredicates(env *value.Environment) {
	def(env, "atom?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsAtom()) }))
	def(env, "boolean?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsBoolean()) }))
	def(env, "integer?", unary(func(v *value.Value) *value.Value {
		return value.NewBoolean(v.IsNumber() && v.AsNumber() == float64(int64(v.AsNumber())))
	}))
	def(env, "list?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsList()) }))
	def(env, "number?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsNumber()) }))
	def(env, "null?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsNil()) }))
	def(env, "pair?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsPair()) }))
	def(env, "procedure?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsProcedure()) }))
	def(env, "string?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsString()) }))
	def(env, "symbol?", unary(func(v *value.Value) *value.Value { return value.NewBoolean(v.IsSymbol()) }))
}

// unary adapts a 1-argument pure predicate into a BuiltinFunc, checking
// arity once here instead of in every predicate body.
func unary(f func(*value.Value) *value.Value) value.BuiltinFunc {
	return func(args []*value.Value, env *value.Environment) (*value.Value, error) {
		if len(args) != 1 {
			return nil, scmerr.Arity("expects exactly 1 argument, got %d", len(args))
		}
		return f(args[0]), nil
	}
}
