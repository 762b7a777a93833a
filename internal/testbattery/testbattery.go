// Package testbattery holds the embedded literal-input → expected-output
// cases from spec §8 (Scenarios and Boundary cases). The driver's
// no-argument mode runs this battery and logs PASS/FAIL per case before
// dropping into the REPL.
package testbattery

import (
	"fmt"
	"log/slog"

	"goscheme/internal/builtins"
	"goscheme/internal/evaluator"
	"goscheme/internal/lexer"
	"goscheme/internal/parser"
	"goscheme/internal/value"
)

// Case is one literal-input → expected-printed-result pair, or an
// expected error category substring for boundary cases.
type Case struct {
	Name          string
	Source        string
	Want          string // canonical printed form of the final expression's result
	WantErrSubstr string // if set, lexing, parsing or evaluating the source must fail with an error containing this text
}

// Cases is the battery drawn from spec §8.
var Cases = []Case{
	{
		Name:   "factorial",
		Source: `(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5)`,
		Want:   "120",
	},
	{
		Name:   "closure capture",
		Source: `(define (make-adder n) (lambda (x) (+ x n))) (define add3 (make-adder 3)) (add3 10)`,
		Want:   "13",
	},
	{
		Name:   "let scoping",
		Source: `(let ((x 2) (y 3)) (let ((x 7) (z (+ x y))) (* z x)))`,
		Want:   "35",
	},
	{
		Name:   "quasiquote unquote",
		Source: "`(1 ,(+ 1 1) 3)",
		Want:   "(1 2 3)",
	},
	{
		Name:   "map",
		Source: `(map (lambda (x) (* x x)) (list 1 2 3 4))`,
		Want:   "(1 4 9 16)",
	},
	{
		Name:   "cond else",
		Source: `(cond ((= 1 2) 'a) ((= 2 2) 'b) (else 'c))`,
		Want:   "b",
	},
	{
		Name:          "car of nil is a type error",
		Source:        `(car '())`,
		WantErrSubstr: "not a pair",
	},
	{
		Name:          "division by zero is a domain error",
		Source:        `(/ 1 0)`,
		WantErrSubstr: "division by zero",
	},
	{
		Name:          "reduce of empty list is a domain error",
		Source:        `(reduce + '())`,
		WantErrSubstr: "empty list",
	},
	{
		Name:          "undefined symbol is a name error",
		Source:        `(undefined-symbol)`,
		WantErrSubstr: "not defined",
	},
	{
		Name:   "shadowed lambda parameter",
		Source: `(lambda (x x) x)`,
		Want:   "#<lambda>",
	},
	{
		Name:          "calling shadowed-parameter lambda with wrong arity",
		Source:        `((lambda (x x) x) 1)`,
		WantErrSubstr: "expects 2 argument",
	},
	{
		Name:   "if without else on false branch yields nil",
		Source: `(if #f 1)`,
		Want:   "()",
	},
	{
		Name:   "modulo takes the divisor's sign",
		Source: `(modulo -7 3)`,
		Want:   "2",
	},
	{
		Name:   "remainder takes the dividend's sign",
		Source: `(remainder -7 3)`,
		Want:   "-1",
	},
}

// Run evaluates every Case against a fresh root environment and logs a
// PASS/FAIL line per case via slog. It returns the number of failures.
func Run() int {
	failures := 0
	for _, c := range Cases {
		err := runCase(c)
		if err != nil {
			slog.Warn("test battery case FAILED", "case", c.Name, "reason", err)
			failures++
		} else {
			slog.Info("test battery case passed", "case", c.Name)
		}
	}
	return failures
}

func runCase(c Case) error {
	env := value.NewRoot()
	builtins.Register(env)

	tokens, err := lexer.Tokenize(c.Source)
	if err != nil {
		return wrapUnlessExpected(c, err)
	}
	p := parser.New(tokens)

	var result *value.Value
	var evalErr error
	for !p.Done() {
		expr, perr := p.Parse()
		if perr != nil {
			return wrapUnlessExpected(c, perr)
		}
		result, evalErr = evaluator.Eval(expr, env)
		if evalErr != nil {
			break
		}
	}

	if c.WantErrSubstr != "" {
		if evalErr == nil {
			return fmt.Errorf("expected an error containing %q, got result %s", c.WantErrSubstr, result)
		}
		if !containsSubstr(evalErr.Error(), c.WantErrSubstr) {
			return fmt.Errorf("expected error containing %q, got %q", c.WantErrSubstr, evalErr.Error())
		}
		return nil
	}

	if evalErr != nil {
		return fmt.Errorf("unexpected error: %v", evalErr)
	}
	if result.String() != c.Want {
		return fmt.Errorf("want %q, got %q", c.Want, result.String())
	}
	return nil
}

func wrapUnlessExpected(c Case, err error) error {
	if c.WantErrSubstr != "" && containsSubstr(err.Error(), c.WantErrSubstr) {
		return nil
	}
	return fmt.Errorf("unexpected error: %v", err)
}

func containsSubstr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
