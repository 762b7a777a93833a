package builtins

import (
	"fmt"

	"goscheme/internal/value"
)

// gensymCounter backs the gensym builtin. It is a plain package var, not
// atomic, because the interpreter is single-threaded and synchronous
// (spec §5) — grounded on the teacher's own gensymCounter global.
var gensymCounter int

// gensym returns a freshly interned unique symbol. The teacher implements
// it as a special form; it needs no unevaluated operands so SPEC_FULL
// demotes it to an ordinary builtin.
func biGensym(args []*value.Value, env *value.Environment) (*value.Value, error) {
	gensymCounter++
	return value.NewSymbol(fmt.Sprintf("G#%d", gensymCounter)), nil
}
