package builtins

import (
	"goscheme/internal/evaluator"
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func registerLists(env *value.Environment) {
	def(env, "append", biAppend)
	def(env, "car", biCar)
	def(env, "cdr", biCdr)
	def(env, "cons", biCons)
	def(env, "length", biLength)
	def(env, "list", biList)
	def(env, "map", biMap)
	def(env, "filter", biFilter)
	def(env, "reduce", biReduce)
	def(env, "memq", biMemq)
	def(env, "reverse", biReverse)
	def(env, "list-ref", biListRef)
	def(env, "assoc", biAssoc)
}

func biAppend(args []*value.Value, env *value.Environment) (*value.Value, error) {
	var all []*value.Value
	for _, a := range args {
		elems, ok := value.ListToSlice(a)
		if !ok {
			return nil, scmerr.Type("append's argument %s is not a proper list", a)
		}
		all = append(all, elems...)
	}
	return value.SliceToList(all), nil
}

func biCar(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("car expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsPair() {
		return nil, scmerr.Type("car's argument %s is not a pair", args[0])
	}
	return args[0].Car(), nil
}

func biCdr(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("cdr expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsPair() {
		return nil, scmerr.Type("cdr's argument %s is not a pair", args[0])
	}
	return args[0].Cdr(), nil
}

func biCons(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("cons expects exactly 2 arguments, got %d", len(args))
	}
	return value.Cons(args[0], args[1]), nil
}

func biLength(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("length expects exactly 1 argument, got %d", len(args))
	}
	elems, ok := value.ListToSlice(args[0])
	if !ok {
		return nil, scmerr.Type("length's argument %s is not a proper list", args[0])
	}
	return value.NewNumber(float64(len(elems))), nil
}

func biList(args []*value.Value, env *value.Environment) (*value.Value, error) {
	return value.SliceToList(args), nil
}

func biMap(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("map expects exactly 2 arguments, got %d", len(args))
	}
	proc := args[0]
	elems, ok := value.ListToSlice(args[1])
	if !ok {
		return nil, scmerr.Type("map's list argument %s is not a proper list", args[1])
	}
	result := make([]*value.Value, len(elems))
	for i, e := range elems {
		v, err := evaluator.Apply(proc, []*value.Value{e}, env)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return value.SliceToList(result), nil
}

func biFilter(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("filter expects exactly 2 arguments, got %d", len(args))
	}
	pred := args[0]
	elems, ok := value.ListToSlice(args[1])
	if !ok {
		return nil, scmerr.Type("filter's list argument %s is not a proper list", args[1])
	}
	var kept []*value.Value
	for _, e := range elems {
		v, err := evaluator.Apply(pred, []*value.Value{e}, env)
		if err != nil {
			return nil, err
		}
		if !(v.IsBoolean() && !v.AsBool()) {
			kept = append(kept, e)
		}
	}
	return value.SliceToList(kept), nil
}

func biReduce(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("reduce expects exactly 2 arguments, got %d", len(args))
	}
	proc := args[0]
	elems, ok := value.ListToSlice(args[1])
	if !ok {
		return nil, scmerr.Type("reduce's list argument %s is not a proper list", args[1])
	}
	if len(elems) == 0 {
		return nil, scmerr.Domain("reduce of an empty list is undefined")
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		var err error
		acc, err = evaluator.Apply(proc, []*value.Value{acc, e}, env)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// memq returns the tail of the list starting at the first element eq? to x
// (value.Eq: pointer identity for pairs, strings and procedures; symbols by
// name, numbers and booleans by value), or #f.
func biMemq(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("memq expects exactly 2 arguments, got %d", len(args))
	}
	x, list := args[0], args[1]
	for list.IsPair() {
		if value.Eq(x, list.Car()) {
			return list, nil
		}
		list = list.Cdr()
	}
	return value.NewBoolean(false), nil
}

func biReverse(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("reverse expects exactly 1 argument, got %d", len(args))
	}
	elems, ok := value.ListToSlice(args[0])
	if !ok {
		return nil, scmerr.Type("reverse's argument %s is not a proper list", args[0])
	}
	reversed := make([]*value.Value, len(elems))
	for i, e := range elems {
		reversed[len(elems)-1-i] = e
	}
	return value.SliceToList(reversed), nil
}

func biListRef(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("list-ref expects exactly 2 arguments, got %d", len(args))
	}
	elems, ok := value.ListToSlice(args[0])
	if !ok {
		return nil, scmerr.Type("list-ref's first argument %s is not a proper list", args[0])
	}
	if !args[1].IsNumber() {
		return nil, scmerr.Type("list-ref's index %s is not a number", args[1])
	}
	i := int(args[1].AsNumber())
	if i < 0 || i >= len(elems) {
		return nil, scmerr.Domain("list-ref index %d out of range for a list of length %d", i, len(elems))
	}
	return elems[i], nil
}

func biAssoc(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 2 {
		return nil, scmerr.Arity("assoc expects exactly 2 arguments, got %d", len(args))
	}
	key, list := args[0], args[1]
	for list.IsPair() {
		entry := list.Car()
		if entry.IsPair() && value.Equal(key, entry.Car()) {
			return entry, nil
		}
		list = list.Cdr()
	}
	return value.NewBoolean(false), nil
}
