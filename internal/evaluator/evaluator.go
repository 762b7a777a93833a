// Package evaluator implements the recursive interpreter over the Value
// tree (spec §4.3) together with the special-form table (spec §4.4) and
// the Apply logic the Environment contract in spec §4.2 describes —
// Apply lives here rather than in the value package because dispatching a
// LambdaProcedure call requires recursively invoking Eval, and value must
// not import evaluator.
package evaluator

import (
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

// SpecialForm is a handler consulted before head evaluation. It receives
// the unevaluated operand list and the current environment.
type SpecialForm func(operands []*value.Value, env *value.Environment) (*value.Value, error)

var specialForms map[string]SpecialForm

func init() {
	specialForms = map[string]SpecialForm{
		"quote":      quoteForm,
		"quasiquote": quasiquoteForm,
		"unquote":    unquoteForm,
		"if":         ifForm,
		"and":        andForm,
		"or":         orForm,
		"lambda":     lambdaForm,
		"define":     defineForm,
		"cond":       condForm,
		"begin":      beginForm,
		"let":        letForm,
	}
}

// Eval dispatches on expr's variant (spec §4.3).
func Eval(expr *value.Value, env *value.Environment) (*value.Value, error) {
	switch expr.Kind() {
	case value.Boolean, value.Number, value.String, value.Builtin, value.Lambda:
		return expr, nil
	case value.Nil:
		return nil, scmerr.Type("evaluating nil () is prohibited")
	case value.Symbol:
		return env.Lookup(expr.AsSymbol())
	case value.Pair:
		return evalPair(expr, env)
	default:
		return nil, scmerr.Type("cannot evaluate value of kind %s", expr.Kind())
	}
}

func evalPair(expr *value.Value, env *value.Environment) (*value.Value, error) {
	head := expr.Car()
	tail := expr.Cdr()

	if head.IsSymbol() {
		if form, ok := specialForms[head.AsSymbol()]; ok {
			operands, ok := value.ListToSlice(tail)
			if !ok {
				return nil, scmerr.Type("malformed special form: operand list is not a proper list")
			}
			return form(operands, env)
		}
	}

	operandList, ok := value.ListToSlice(tail)
	if !ok {
		return nil, scmerr.Type("malformed application: argument list is not a proper list")
	}

	proc, err := Eval(head, env)
	if err != nil {
		return nil, scmerr.Wrap(err, "evaluating operator %s", head)
	}

	args := make([]*value.Value, len(operandList))
	for i, operand := range operandList {
		args[i], err = Eval(operand, env)
		if err != nil {
			return nil, scmerr.Wrap(err, "evaluating operand %s", operand)
		}
	}

	return Apply(proc, args, env)
}

// Apply dispatches a procedure call (spec §4.2's Environment.apply).
// callerEnv is the environment the call is happening in — builtins receive
// it as their (args, env) second parameter; it is unrelated to a lambda's
// captured frame.
func Apply(proc *value.Value, args []*value.Value, callerEnv *value.Environment) (*value.Value, error) {
	switch proc.Kind() {
	case value.Builtin:
		return proc.CallBuiltin(args, callerEnv)
	case value.Lambda:
		return applyLambda(proc, args)
	default:
		return nil, scmerr.Type("%s is not a procedure", proc)
	}
}

func applyLambda(proc *value.Value, args []*value.Value) (*value.Value, error) {
	params := proc.LambdaParams()
	if len(args) != len(params) {
		return nil, scmerr.Arity("lambda expects %d argument(s), got %d", len(params), len(args))
	}

	frame := proc.LambdaEnv().Child()
	for i, name := range params {
		frame.Define(name, args[i])
	}

	body := proc.LambdaBody()
	if len(body) == 0 {
		return value.NewNil(), nil
	}

	var result *value.Value
	var err error
	for _, expr := range body {
		result, err = Eval(expr, frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
