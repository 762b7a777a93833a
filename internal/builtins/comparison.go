package builtins

import (
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func registerComparison(env *value.Environment) {
	def(env, "=", chained("=", func(a, b float64) bool { return a == b }))
	def(env, "<", chained("<", func(a, b float64) bool { return a < b }))
	def(env, ">", chained(">", func(a, b float64) bool { return a > b }))
	def(env, "<=", chained("<=", func(a, b float64) bool { return a <= b }))
	def(env, ">=", chained(">=", func(a, b float64) bool { return a >= b }))
	def(env, "eq?", biEqp)
	def(env, "equal?", biEqualp)
	def(env, "not", biNot)
	def(env, "even?", biEven)
	def(env, "odd?", biOdd)
	def(env, "zero?", biZero)
}

// chained builds an n-ary chained comparison: (< a b c) is true iff
// a<b and b<c (spec §4.5).
func chained(name string, cmp func(a, b float64) bool) value.BuiltinFunc {
	return func(args []*value.Value, env *value.Environment) (*value.Value, error) {
		if len(args) < 2 {
			return nil, scmerr.Arity("%s expects at least 2 arguments, got %d", name, len(args))
		}
		nums, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(nums); i++ {
			if !cmp(nums[i], nums[i+1]) {
				return value.NewBoolean(false), nil
			}
		}
		return value.NewBoolean(true), nil
	}
}

func biEqp(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("eq? expects exactly 2 arguments, got %d", len(args))
	}
	return value.NewBoolean(value.Eq(args[0], args[1])), nil
}

func biEqualp(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("equal? expects exactly 2 arguments, got %d", len(args))
	}
	return value.NewBoolean(value.Equal(args[0], args[1])), nil
}

// not returns #t iff its argument is exactly the Boolean #f, the canonical
// Scheme rule spec §9 adopts over the teacher's inconsistent variants.
func biNot(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("not expects exactly 1 argument, got %d", len(args))
	}
	return value.NewBoolean(args[0].IsBoolean() && !args[0].AsBool()), nil
}

func biEven(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("even? expects exactly 1 argument, got %d", len(args))
	}
	n, err := asNumber("even?", args[0])
	if err != nil {
		return nil, err
	}
	return value.NewBoolean(int64(n)%2 == 0), nil
}

func biOdd(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("odd? expects exactly 1 argument, got %d", len(args))
	}
	n, err := asNumber("odd?", args[0])
	if err != nil {
		return nil, err
	}
	return value.NewBoolean(int64(n)%2 != 0), nil
}

func biZero(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("zero? expects exactly 1 argument, got %d", len(args))
	}
	n, err := asNumber("zero?", args[0])
	if err != nil {
		return nil, err
	}
	return value.NewBoolean(n == 0), nil
}
