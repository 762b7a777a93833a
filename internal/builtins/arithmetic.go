package builtins

import (
	"math"

	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func registerArithmetic(env *value.Environment) {
	def(env, "+", biAdd)
	def(env, "-", biSub)
	def(env, "*", biMul)
	def(env, "/", biDiv)
	def(env, "abs", biAbs)
	def(env, "expt", biExpt)
	def(env, "quotient", biQuotient)
	def(env, "modulo", biModulo)
	def(env, "remainder", biRemainder)
}

// asNumber coerces v through the §4.5 as_number contract, failing with a
// TypeError if v is not a Number.
func asNumber(name string, v *value.Value) (float64, error) {
	if !v.IsNumber() {
		return 0, scmerr.Type("%s: argument %s is not a number", name, v)
	}
	return v.AsNumber(), nil
}

func numbers(name string, args []*value.Value) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		n, err := asNumber(name, a)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func biAdd(args []*value.Value, env *value.Environment) (*value.Value, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return value.NewNumber(sum), nil
}

func biMul(args []*value.Value, env *value.Environment) (*value.Value, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return value.NewNumber(product), nil
}

func biSub(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) == 0 {
		return nil, scmerr.Arity("- expects at least 1 argument, got 0")
	}
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return value.NewNumber(-nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return value.NewNumber(result), nil
}

func biDiv(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) == 0 {
		return nil, scmerr.Arity("/ expects at least 1 argument, got 0")
	}
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		if nums[0] == 0 {
			return nil, scmerr.Domain("division by zero")
		}
		return value.NewNumber(1 / nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, scmerr.Domain("division by zero")
		}
		result /= n
	}
	return value.NewNumber(result), nil
}

func biAbs(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("abs expects exactly 1 argument, got %d", len(args))
	}
	n, err := asNumber("abs", args[0])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Abs(n)), nil
}

func biExpt(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("expt expects exactly 2 arguments, got %d", len(args))
	}
	base, err := asNumber("expt", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber("expt", args[1])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(math.Pow(base, exp)), nil
}

func biQuotient(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("quotient expects exactly 2 arguments, got %d", len(args))
	}
	a, err := asNumber("quotient", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("quotient", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, scmerr.Domain("quotient by zero")
	}
	return value.NewNumber(math.Trunc(a / b)), nil
}

// modulo's result takes the sign of the divisor.
func biModulo(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("modulo expects exactly 2 arguments, got %d", len(args))
	}
	a, err := asNumber("modulo", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("modulo", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, scmerr.Domain("modulo by zero")
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return value.NewNumber(m), nil
}

// remainder's result takes the sign of the dividend.
func biRemainder(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("remainder expects exactly 2 arguments, got %d", len(args))
	}
	a, err := asNumber("remainder", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("remainder", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, scmerr.Domain("remainder by zero")
	}
	return value.NewNumber(math.Mod(a, b)), nil
}
