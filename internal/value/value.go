// Package value implements the heterogeneous Value model shared by the
// parser, environment, evaluator, and built-in library (spec §3). Value and
// Environment live in one package because a LambdaProcedure's captured
// frame is itself part of the value tree — the same coupling the teacher
// repo has between its Value and Frame types.
package value

import "github.com/google/uuid"

// Kind is the tag of a Value's variant.
type Kind int

const (
	Nil Kind = iota
	Boolean
	Number
	String
	Symbol
	Pair
	Builtin
	Lambda
)

func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case Pair:
		return "pair"
	case Builtin:
		return "procedure"
	case Lambda:
		return "procedure"
	default:
		return "unknown"
	}
}

// BuiltinFunc is the shape every built-in procedure implements: it
// receives the already-evaluated argument vector and the environment the
// call is happening in (spec §4.5).
type BuiltinFunc func(args []*Value, env *Environment) (*Value, error)

// Value is a tagged union over the eight variants of spec §3. Only the
// fields relevant to Kind are meaningful; nothing is a class hierarchy so
// dispatch on Kind is exhaustive by construction.
type Value struct {
	kind Kind
	id   uuid.UUID // identity tag for Pair and Lambda; see eq?/memq in spec §9

	boolean bool
	number  float64
	str     string
	symbol  string

	car *Value
	cdr *Value

	builtinName string
	builtinFn   BuiltinFunc

	params []string
	body   []*Value
	env    *Environment
}

var nilValue = &Value{kind: Nil}

// NewNil returns the single Nil value, the empty list.
func NewNil() *Value { return nilValue }

// NewBoolean returns a Boolean value.
func NewBoolean(b bool) *Value { return &Value{kind: Boolean, boolean: b} }

// NewNumber returns a Number value.
func NewNumber(n float64) *Value { return &Value{kind: Number, number: n} }

// NewString returns a String value.
func NewString(s string) *Value { return &Value{kind: String, str: s} }

// NewSymbol returns a Symbol value.
func NewSymbol(name string) *Value { return &Value{kind: Symbol, symbol: name} }

// Cons builds a fresh Pair cell with the given car and cdr.
func Cons(car, cdr *Value) *Value {
	return &Value{kind: Pair, car: car, cdr: cdr, id: uuid.New()}
}

// NewBuiltin wraps a Go function as a BuiltinProcedure with a display name.
func NewBuiltin(name string, fn BuiltinFunc) *Value {
	return &Value{kind: Builtin, builtinName: name, builtinFn: fn}
}

// NewLambda builds a LambdaProcedure closing over env.
func NewLambda(params []string, body []*Value, env *Environment) *Value {
	return &Value{kind: Lambda, params: params, body: body, env: env, id: uuid.New()}
}

// Kind reports the variant tag.
func (v *Value) Kind() Kind { return v.kind }

// ID returns the identity tag stamped on Pair and Lambda values at
// construction. It is not used to decide eq?/memq (pointer identity is the
// primary test, per spec §9's Open Questions); it exists for diagnostics.
func (v *Value) ID() uuid.UUID { return v.id }

func (v *Value) IsNil() bool       { return v.kind == Nil }
func (v *Value) IsBoolean() bool   { return v.kind == Boolean }
func (v *Value) IsNumber() bool    { return v.kind == Number }
func (v *Value) IsString() bool    { return v.kind == String }
func (v *Value) IsSymbol() bool    { return v.kind == Symbol }
func (v *Value) IsPair() bool      { return v.kind == Pair }
func (v *Value) IsProcedure() bool { return v.kind == Builtin || v.kind == Lambda }
func (v *Value) IsBuiltin() bool   { return v.kind == Builtin }
func (v *Value) IsLambda() bool    { return v.kind == Lambda }

// IsList reports whether v is Nil or a Pair whose spine terminates in Nil.
func (v *Value) IsList() bool {
	for {
		switch v.kind {
		case Nil:
			return true
		case Pair:
			v = v.cdr
		default:
			return false
		}
	}
}

// IsAtom is true for booleans, numbers, strings, symbols, and Nil.
func (v *Value) IsAtom() bool {
	return v.kind != Pair && v.kind != Builtin && v.kind != Lambda
}

// AsBool returns the underlying bool. Callers must check IsBoolean first.
func (v *Value) AsBool() bool { return v.boolean }

// AsNumber returns the underlying float64. Callers must check IsNumber first.
func (v *Value) AsNumber() float64 { return v.number }

// AsString returns the underlying string contents. Callers must check
// IsString first.
func (v *Value) AsString() string { return v.str }

// AsSymbol returns the underlying symbol name. Callers must check IsSymbol
// first.
func (v *Value) AsSymbol() string { return v.symbol }

// Car returns the head of a Pair. Callers must check IsPair first.
func (v *Value) Car() *Value { return v.car }

// Cdr returns the tail of a Pair. Callers must check IsPair first.
func (v *Value) Cdr() *Value { return v.cdr }

// SetCar/SetCdr mutate a Pair in place. Nothing in the interpreter calls
// them (the parser builds lists, dotted tails included, with Cons); once a
// Value is handed to the evaluator, pairs are treated as shared and
// immutable.
func (v *Value) SetCar(car *Value) { v.car = car }
func (v *Value) SetCdr(cdr *Value) { v.cdr = cdr }

// BuiltinName returns a builtin procedure's display name.
func (v *Value) BuiltinName() string { return v.builtinName }

// CallBuiltin invokes a builtin procedure's underlying function.
func (v *Value) CallBuiltin(args []*Value, env *Environment) (*Value, error) {
	return v.builtinFn(args, env)
}

// LambdaParams returns a lambda's parameter names in order.
func (v *Value) LambdaParams() []string { return v.params }

// LambdaBody returns a lambda's body expressions in order.
func (v *Value) LambdaBody() []*Value { return v.body }

// LambdaEnv returns the frame a lambda captured when it was created.
func (v *Value) LambdaEnv() *Environment { return v.env }

// ListToSlice flattens a proper list into a Go slice. It reports ok=false
// if the spine is improper (does not terminate in Nil).
func ListToSlice(v *Value) (elems []*Value, ok bool) {
	for {
		switch v.kind {
		case Nil:
			return elems, true
		case Pair:
			elems = append(elems, v.car)
			v = v.cdr
		default:
			return elems, false
		}
	}
}

// SliceToList builds a proper list out of a Go slice, right to left.
func SliceToList(elems []*Value) *Value {
	result := NewNil()
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// Equal implements spec §6's `equal?`: structural deep equality, recursing
// through pairs, numeric equality for numbers, content equality for
// strings, symbols and booleans, and identity for procedures.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Nil:
		return true
	case Boolean:
		return a.boolean == b.boolean
	case Number:
		return a.number == b.number
	case String:
		return a.str == b.str
	case Symbol:
		return a.symbol == b.symbol
	case Pair:
		return Equal(a.car, b.car) && Equal(a.cdr, b.cdr)
	default:
		return a == b
	}
}

// Eq implements spec §6's `eq?`: structural for symbols, numeric equality
// for numbers, value equality for booleans, Nil eq to Nil, and identity
// (pointer, backed by the ID tag for diagnostics) for everything else.
func Eq(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Nil:
		return true
	case Boolean:
		return a.boolean == b.boolean
	case Number:
		return a.number == b.number
	case Symbol:
		return a.symbol == b.symbol
	default:
		return a == b
	}
}
