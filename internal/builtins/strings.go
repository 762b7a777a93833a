package builtins

import (
	"strconv"
	"strings"

	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

// registerStrings adds the supplemental string/conversion roster
// SPEC_FULL §6 lists, grounded on strings/strconv usage patterns pervasive
// across the retrieval pack's builtin libraries.
func registerStrings(env *value.Environment) {
	def(env, "string-append", biStringAppend)
	def(env, "string-length", biStringLength)
	def(env, "substring", biSubstring)
	def(env, "string->symbol", biStringToSymbol)
	def(env, "symbol->string", biSymbolToString)
	def(env, "string->number", biStringToNumber)
	def(env, "number->string", biNumberToString)
}

func biStringAppend(args []*value.Value, env *value.Environment) (*value.Value, error) {
	var b strings.Builder
	for _, a := range args {
		if !a.IsString() {
			return nil, scmerr.Type("string-append's argument %s is not a string", a)
		}
		b.WriteString(a.AsString())
	}
	return value.NewString(b.String()), nil
}

func biStringLength(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("string-length expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsString() {
		return nil, scmerr.Type("string-length's argument %s is not a string", args[0])
	}
	return value.NewNumber(float64(len(args[0].AsString()))), nil
}

func biSubstring(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 3 {
		return nil, scmerr.Arity("substring expects exactly 3 arguments, got %d", len(args))
	}
	if !args[0].IsString() {
		return nil, scmerr.Type("substring's first argument %s is not a string", args[0])
	}
	if !args[1].IsNumber() || !args[2].IsNumber() {
		return nil, scmerr.Type("substring's start/end arguments must be numbers")
	}
	s := args[0].AsString()
	start, end := int(args[1].AsNumber()), int(args[2].AsNumber())
	if start < 0 || end > len(s) || start > end {
		return nil, scmerr.Domain("substring indices [%d, %d) out of range for a string of length %d", start, end, len(s))
	}
	return value.NewString(s[start:end]), nil
}

func biStringToSymbol(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("string->symbol expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsString() {
		return nil, scmerr.Type("string->symbol's argument %s is not a string", args[0])
	}
	return value.NewSymbol(args[0].AsString()), nil
}

func biSymbolToString(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("symbol->string expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsSymbol() {
		return nil, scmerr.Type("symbol->string's argument %s is not a symbol", args[0])
	}
	return value.NewString(args[0].AsSymbol()), nil
}

// string->number returns #f on parse failure rather than erroring (unlike
// the as_number coercion of the arithmetic builtins, which raises a
// TypeError) (spec addition, §6).
func biStringToNumber(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("string->number expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsString() {
		return nil, scmerr.Type("string->number's argument %s is not a string", args[0])
	}
	n, err := strconv.ParseFloat(args[0].AsString(), 64)
	if err != nil {
		return value.NewBoolean(false), nil
	}
	return value.NewNumber(n), nil
}

func biNumberToString(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("number->string expects exactly 1 argument, got %d", len(args))
	}
	if !args[0].IsNumber() {
		return nil, scmerr.Type("number->string's argument %s is not a number", args[0])
	}
	return value.NewString(args[0].String()), nil
}
