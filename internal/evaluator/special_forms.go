package evaluator

import (
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func quoteForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) != 1 {
		return nil, scmerr.Arity("quote expects exactly 1 operand, got %d", len(operands))
	}
	return operands[0], nil
}

func quasiquoteForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) != 1 {
		return nil, scmerr.Arity("quasiquote expects exactly 1 operand, got %d", len(operands))
	}
	return quasiquoteWalk(operands[0], env)
}

// quasiquoteWalk rebuilds its argument structurally, replacing any
// sub-form shaped (unquote e) with eval(e, env). It handles only one level
// of unquote and does not implement unquote-splicing (spec §9).
func quasiquoteWalk(v *value.Value, env *value.Environment) (*value.Value, error) {
	if !v.IsPair() {
		return v, nil
	}
	if v.Car().IsSymbol() && v.Car().AsSymbol() == "unquote" {
		rest, ok := value.ListToSlice(v.Cdr())
		if !ok || len(rest) != 1 {
			return nil, scmerr.Arity("unquote expects exactly 1 operand")
		}
		return Eval(rest[0], env)
	}
	car, err := quasiquoteWalk(v.Car(), env)
	if err != nil {
		return nil, err
	}
	cdr, err := quasiquoteWalk(v.Cdr(), env)
	if err != nil {
		return nil, err
	}
	return value.Cons(car, cdr), nil
}

// unquoteForm is installed for uniformity (spec §9) but a standalone
// (unquote e) outside a quasiquote walk is not permitted.
func unquoteForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	return nil, scmerr.Type("unquote is not valid outside quasiquote")
}

func ifForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) != 2 && len(operands) != 3 {
		return nil, scmerr.Arity("if expects 2 or 3 operands, got %d", len(operands))
	}
	test, err := Eval(operands[0], env)
	if err != nil {
		return nil, err
	}
	if isTrue(test) {
		return Eval(operands[1], env)
	}
	if len(operands) == 3 {
		return Eval(operands[2], env)
	}
	return value.NewNil(), nil
}

// isTrue implements spec §9's truthiness rule: only the Boolean #f counts
// as false. Nil is true.
func isTrue(v *value.Value) bool {
	return !(v.IsBoolean() && !v.AsBool())
}

func andForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	result := value.NewBoolean(true)
	for _, operand := range operands {
		v, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		if v.IsBoolean() && !v.AsBool() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

func orForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	for _, operand := range operands {
		v, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		if !(v.IsBoolean() && !v.AsBool()) {
			return v, nil
		}
	}
	return value.NewBoolean(false), nil
}

func lambdaForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) < 2 {
		return nil, scmerr.Arity("lambda expects a parameter list and at least 1 body expression")
	}
	params, err := parseParams(operands[0])
	if err != nil {
		return nil, err
	}
	return value.NewLambda(params, operands[1:], env.Child()), nil
}

func parseParams(paramList *value.Value) ([]string, error) {
	elems, ok := value.ListToSlice(paramList)
	if !ok {
		return nil, scmerr.Type("lambda parameter list must be a proper list of symbols")
	}
	params := make([]string, len(elems))
	for i, e := range elems {
		if !e.IsSymbol() {
			return nil, scmerr.Type("lambda parameter %s is not a symbol", e)
		}
		params[i] = e.AsSymbol()
	}
	return params, nil
}

func defineForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) < 1 {
		return nil, scmerr.Arity("define expects at least 1 operand")
	}

	target := operands[0]

	if target.IsPair() {
		// (define (name p1 ... pk) body...) sugar for
		// (define name (lambda (p1 ... pk) body...))
		if !target.Car().IsSymbol() {
			return nil, scmerr.Type("define's target head %s is not a symbol", target.Car())
		}
		name := target.Car().AsSymbol()
		if len(operands) < 2 {
			return nil, scmerr.Arity("define %s expects at least 1 body expression", name)
		}
		params, err := parseParams(target.Cdr())
		if err != nil {
			return nil, err
		}
		lambda := value.NewLambda(params, operands[1:], env.Child())
		env.Define(name, lambda)
		return value.NewNil(), nil
	}

	if !target.IsSymbol() {
		return nil, scmerr.Type("define's target %s is not a symbol or parameter list", target)
	}
	if len(operands) != 2 {
		return nil, scmerr.Arity("define %s expects exactly 1 value expression", target.AsSymbol())
	}
	result, err := Eval(operands[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(target.AsSymbol(), result)
	return value.NewNil(), nil
}

func condForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	for _, clauseVal := range operands {
		clause, ok := value.ListToSlice(clauseVal)
		if !ok || len(clause) == 0 {
			return nil, scmerr.Type("cond clause %s must be a non-empty proper list", clauseVal)
		}

		var test *value.Value
		var err error
		if clause[0].IsSymbol() && clause[0].AsSymbol() == "else" {
			test = value.NewBoolean(true)
		} else {
			test, err = Eval(clause[0], env)
			if err != nil {
				return nil, err
			}
		}

		if !isTrue(test) {
			continue
		}
		if len(clause) == 1 {
			return test, nil
		}
		var result *value.Value
		for _, expr := range clause[1:] {
			result, err = Eval(expr, env)
			if err != nil {
				return nil, err
			}
		}
		return result, nil
	}
	return value.NewNil(), nil
}

func beginForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	var result *value.Value = value.NewNil()
	for _, operand := range operands {
		v, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func letForm(operands []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(operands) < 1 {
		return nil, scmerr.Arity("let expects a binding list and a body")
	}
	bindingList, ok := value.ListToSlice(operands[0])
	if !ok {
		return nil, scmerr.Type("let bindings must be a proper list")
	}

	names := make([]string, len(bindingList))
	results := make([]*value.Value, len(bindingList))
	for i, bindingVal := range bindingList {
		binding, ok := value.ListToSlice(bindingVal)
		if !ok || len(binding) != 2 || !binding[0].IsSymbol() {
			return nil, scmerr.Type("let binding %s must be (name expr)", bindingVal)
		}
		names[i] = binding[0].AsSymbol()
		var err error
		results[i], err = Eval(binding[1], env)
		if err != nil {
			return nil, err
		}
	}

	frame := env.Child()
	for i, name := range names {
		frame.Define(name, results[i])
	}

	var result *value.Value = value.NewNil()
	for _, expr := range operands[1:] {
		v, err := Eval(expr, frame)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
