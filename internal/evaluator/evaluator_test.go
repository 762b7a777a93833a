package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goscheme/internal/value"
)

// testEnv returns a root frame with just enough arithmetic/comparison
// builtins for these tests, hand-rolled here rather than imported from the
// builtins package to avoid a cycle (builtins imports evaluator for Apply).
func testEnv() *value.Environment {
	env := value.NewRoot()
	binary := func(f func(a, b float64) float64) value.BuiltinFunc {
		return func(args []*value.Value, env *value.Environment) (*value.Value, error) {
			return value.NewNumber(f(args[0].AsNumber(), args[1].AsNumber())), nil
		}
	}
	env.Define("+", value.NewBuiltin("+", func(args []*value.Value, env *value.Environment) (*value.Value, error) {
		sum := 0.0
		for _, a := range args {
			sum += a.AsNumber()
		}
		return value.NewNumber(sum), nil
	}))
	env.Define("*", value.NewBuiltin("*", func(args []*value.Value, env *value.Environment) (*value.Value, error) {
		product := 1.0
		for _, a := range args {
			product *= a.AsNumber()
		}
		return value.NewNumber(product), nil
	}))
	env.Define("-", value.NewBuiltin("-", binary(func(a, b float64) float64 { return a - b })))
	env.Define("=", value.NewBuiltin("=", func(args []*value.Value, env *value.Environment) (*value.Value, error) {
		return value.NewBoolean(args[0].AsNumber() == args[1].AsNumber()), nil
	}))
	return env
}

func evalSrc(t *testing.T, env *value.Environment, expr *value.Value) *value.Value {
	t.Helper()
	v, err := Eval(expr, env)
	require.NoError(t, err)
	return v
}

func sym(name string) *value.Value   { return value.NewSymbol(name) }
func num(n float64) *value.Value     { return value.NewNumber(n) }
func list(vs ...*value.Value) *value.Value { return value.SliceToList(vs) }

func TestSelfEvaluatingAtoms(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "42", evalSrc(t, env, num(42)).String())
	assert.Equal(t, "#t", evalSrc(t, env, value.NewBoolean(true)).String())
	assert.Equal(t, `"hi"`, evalSrc(t, env, value.NewString("hi")).String())
}

func TestEvaluatingNilIsProhibited(t *testing.T) {
	_, err := Eval(value.NewNil(), testEnv())
	assert.Error(t, err)
}

func TestSymbolLookup(t *testing.T) {
	env := testEnv()
	env.Define("x", num(5))
	assert.Equal(t, "5", evalSrc(t, env, sym("x")).String())
}

func TestUndefinedSymbolIsNameError(t *testing.T) {
	_, err := Eval(sym("nope"), testEnv())
	assert.Error(t, err)
}

func TestQuoteReturnsUnevaluated(t *testing.T) {
	env := testEnv()
	expr := list(sym("quote"), list(sym("a"), sym("b")))
	assert.Equal(t, "(a b)", evalSrc(t, env, expr).String())
}

func TestIfTrueAndFalseBranches(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "1", evalSrc(t, env, list(sym("if"), value.NewBoolean(true), num(1), num(2))).String())
	assert.Equal(t, "2", evalSrc(t, env, list(sym("if"), value.NewBoolean(false), num(1), num(2))).String())
}

func TestIfFalseWithoutElseYieldsNil(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "()", evalSrc(t, env, list(sym("if"), value.NewBoolean(false), num(1))).String())
}

func TestNilIsTruthy(t *testing.T) {
	env := testEnv()
	// (if '() 1 2) -- Nil counts as true, only #f is false.
	expr := list(sym("if"), list(sym("quote"), value.NewNil()), num(1), num(2))
	assert.Equal(t, "1", evalSrc(t, env, expr).String())
}

func TestAndShortCircuitsOnFalse(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "#f", evalSrc(t, env, list(sym("and"), value.NewBoolean(false), num(1))).String())
	assert.Equal(t, "3", evalSrc(t, env, list(sym("and"), num(1), num(2), num(3))).String())
	assert.Equal(t, "#t", evalSrc(t, env, list(sym("and"))).String())
}

func TestOrReturnsFirstTruthy(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "1", evalSrc(t, env, list(sym("or"), num(1), num(2))).String())
	assert.Equal(t, "#f", evalSrc(t, env, list(sym("or"))).String())
}

func TestLambdaAndApply(t *testing.T) {
	env := testEnv()
	// ((lambda (x y) (+ x y)) 3 4)
	lambda := list(sym("lambda"), list(sym("x"), sym("y")), list(sym("+"), sym("x"), sym("y")))
	call := list(lambda, num(3), num(4))
	assert.Equal(t, "7", evalSrc(t, env, call).String())
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	env := testEnv()
	// (define (make-adder n) (lambda (x) (+ x n)))
	_, err := Eval(list(sym("define"),
		list(sym("make-adder"), sym("n")),
		list(sym("lambda"), list(sym("x")), list(sym("+"), sym("x"), sym("n")))), env)
	require.NoError(t, err)

	adder, err := Eval(list(sym("make-adder"), num(3)), env)
	require.NoError(t, err)

	result, err := Apply(adder, []*value.Value{num(10)}, env)
	require.NoError(t, err)
	assert.Equal(t, "13", result.String())
}

func TestDefineFunctionSugar(t *testing.T) {
	env := testEnv()
	_, err := Eval(list(sym("define"),
		list(sym("double"), sym("x")),
		list(sym("*"), sym("x"), num(2))), env)
	require.NoError(t, err)

	result := evalSrc(t, env, list(sym("double"), num(21)))
	assert.Equal(t, "42", result.String())
}

func TestCondElseClause(t *testing.T) {
	env := testEnv()
	expr := list(sym("cond"),
		list(list(sym("="), num(1), num(2)), list(sym("quote"), sym("a"))),
		list(list(sym("="), num(2), num(2)), list(sym("quote"), sym("b"))),
		list(sym("else"), list(sym("quote"), sym("c"))))
	assert.Equal(t, "b", evalSrc(t, env, expr).String())
}

func TestCondNoMatchYieldsNil(t *testing.T) {
	env := testEnv()
	expr := list(sym("cond"), list(value.NewBoolean(false), num(1)))
	assert.Equal(t, "()", evalSrc(t, env, expr).String())
}

func TestBeginReturnsLast(t *testing.T) {
	env := testEnv()
	assert.Equal(t, "3", evalSrc(t, env, list(sym("begin"), num(1), num(2), num(3))).String())
	assert.Equal(t, "()", evalSrc(t, env, list(sym("begin"))).String())
}

func TestLetScopingInnerSeesOuter(t *testing.T) {
	env := testEnv()
	// (let ((x 2) (y 3)) (let ((x 7) (z (+ x y))) (* z x)))
	inner := list(sym("let"),
		list(list(sym("x"), num(7)), list(sym("z"), list(sym("+"), sym("x"), sym("y")))),
		list(sym("*"), sym("z"), sym("x")))
	outer := list(sym("let"), list(list(sym("x"), num(2)), list(sym("y"), num(3))), inner)
	assert.Equal(t, "35", evalSrc(t, env, outer).String())
}

func TestQuasiquoteWithUnquote(t *testing.T) {
	env := testEnv()
	// `(1 ,(+ 1 1) 3)
	expr := list(sym("quasiquote"), list(num(1), list(sym("unquote"), list(sym("+"), num(1), num(1))), num(3)))
	assert.Equal(t, "(1 2 3)", evalSrc(t, env, expr).String())
}

func TestLambdaArityMismatch(t *testing.T) {
	env := testEnv()
	lambda := list(sym("lambda"), list(sym("x"), sym("y")), sym("x"))
	_, err := Eval(list(lambda, num(1)), env)
	assert.Error(t, err)
}

func TestApplyingNonProcedureIsTypeError(t *testing.T) {
	env := testEnv()
	_, err := Eval(list(num(1), num(2)), env)
	assert.Error(t, err)
}
