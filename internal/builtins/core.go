package builtins

import (
	"fmt"
	"os"

	"goscheme/internal/evaluator"
	"goscheme/internal/scmerr"
	"goscheme/internal/value"
)

func registerCore(env *value.Environment) {
	def(env, "apply", biApply)
	def(env, "display", biDisplay)
	def(env, "displayln", biDisplayln)
	def(env, "newline", biNewline)
	def(env, "print", biPrint)
	def(env, "error", biError)
	def(env, "eval", biEval)
	def(env, "exit", biExit)
}

// apply (proc, args..., trailing-list) flattens its middle arguments and
// the final list into a single call.
func biApply(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) < 2 {
		return nil, scmerr.Arity("apply expects at least 2 arguments, got %d", len(args))
	}
	proc := args[0]
	trailing, ok := value.ListToSlice(args[len(args)-1])
	if !ok {
		return nil, scmerr.Type("apply's trailing argument %s must be a proper list", args[len(args)-1])
	}
	callArgs := append(append([]*value.Value{}, args[1:len(args)-1]...), trailing...)
	return evaluator.Apply(proc, callArgs, env)
}

func biDisplay(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) > 1 {
		return nil, scmerr.Arity("display expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		fmt.Print(args[0].DisplayString())
	}
	return value.NewNil(), nil
}

func biDisplayln(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) > 1 {
		return nil, scmerr.Arity("displayln expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		fmt.Println(args[0].DisplayString())
	} else {
		fmt.Println()
	}
	return value.NewNil(), nil
}

func biNewline(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 0 {
		return nil, scmerr.Arity("newline expects 0 arguments, got %d", len(args))
	}
	fmt.Println()
	return value.NewNil(), nil
}

// print prints each argument on its own line in printable form.
func biPrint(args []*value.Value, env *value.Environment) (*value.Value, error) {
	for _, a := range args {
		fmt.Println(a.String())
	}
	return value.NewNil(), nil
}

func biError(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) > 1 {
		return nil, scmerr.Arity("error expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		return nil, scmerr.User("%s", args[0].DisplayString())
	}
	return nil, scmerr.User("user error")
}

// eval intentionally evaluates in the current interpreter environment
// rather than a passed-in one (spec §9's Open Questions: preserved on
// purpose, not a bug).
func biEval(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) != 1 {
		return nil, scmerr.Arity("eval expects exactly 1 argument, got %d", len(args))
	}
	return evaluator.Eval(args[0], env)
}

func biExit(args []*value.Value, env *value.Environment) (*value.Value, error) {
	if len(args) > 1 {
		return nil, scmerr.Arity("exit expects at most 1 argument, got %d", len(args))
	}
	code := 0
	if len(args) == 1 {
		if !args[0].IsNumber() {
			return nil, scmerr.Type("exit's argument %s is not a number", args[0])
		}
		code = int(args[0].AsNumber())
	}
	os.Exit(code)
	return value.NewNil(), nil
}
