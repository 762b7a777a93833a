// Package scmerr defines the error categories surfaced to the driver
// (spec §7): Syntax, Name, Type, Arity, Domain, User. Each category is a
// distinct Go type so the driver can distinguish them with errors.As
// instead of sniffing message prefixes, while github.com/pkg/errors keeps
// the underlying cause attached through Wrap/Wrapf when one exists.
package scmerr

import "github.com/pkg/errors"

// SyntaxError reports a malformed token stream: unbalanced parens, a
// misplaced dot, or an unexpected end of input.
type SyntaxError struct{ cause error }

func (e *SyntaxError) Error() string { return "Syntax error: " + e.cause.Error() }
func (e *SyntaxError) Unwrap() error { return e.cause }

// Syntax wraps msg as a SyntaxError.
func Syntax(format string, args ...any) error {
	return &SyntaxError{cause: errors.Errorf(format, args...)}
}

// NameError reports an undefined variable during environment lookup.
type NameError struct{ cause error }

func (e *NameError) Error() string { return "Evaluation error: " + e.cause.Error() }
func (e *NameError) Unwrap() error { return e.cause }

// Name wraps msg as a NameError.
func Name(format string, args ...any) error {
	return &NameError{cause: errors.Errorf(format, args...)}
}

// TypeError reports an argument that fails a predicate required by a
// built-in or special form.
type TypeError struct{ cause error }

func (e *TypeError) Error() string { return "Evaluation error: " + e.cause.Error() }
func (e *TypeError) Unwrap() error { return e.cause }

// Type wraps msg as a TypeError.
func Type(format string, args ...any) error {
	return &TypeError{cause: errors.Errorf(format, args...)}
}

// ArityError reports the wrong number of operands to a special form,
// built-in, or lambda call.
type ArityError struct{ cause error }

func (e *ArityError) Error() string { return "Evaluation error: " + e.cause.Error() }
func (e *ArityError) Unwrap() error { return e.cause }

// Arity wraps msg as an ArityError.
func Arity(format string, args ...any) error {
	return &ArityError{cause: errors.Errorf(format, args...)}
}

// DomainError reports division/modulo by zero, reduce of an empty list,
// and similar operations undefined on their otherwise well-typed inputs.
type DomainError struct{ cause error }

func (e *DomainError) Error() string { return "Evaluation error: " + e.cause.Error() }
func (e *DomainError) Unwrap() error { return e.cause }

// Domain wraps msg as a DomainError.
func Domain(format string, args ...any) error {
	return &DomainError{cause: errors.Errorf(format, args...)}
}

// UserError is explicitly raised by the `error` built-in.
type UserError struct{ cause error }

func (e *UserError) Error() string { return "Evaluation error: " + e.cause.Error() }
func (e *UserError) Unwrap() error { return e.cause }

// User wraps msg as a UserError.
func User(format string, args ...any) error {
	return &UserError{cause: errors.Errorf(format, args...)}
}

// Wrap re-wraps an already-categorized scheme error with additional
// call-site context (e.g. "eval (foo 1 2):") while preserving its category
// and the pkg/errors cause chain, so errors.As still finds the original
// category further up the stack.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *SyntaxError:
		return &SyntaxError{cause: errors.Wrapf(e.cause, format, args...)}
	case *NameError:
		return &NameError{cause: errors.Wrapf(e.cause, format, args...)}
	case *TypeError:
		return &TypeError{cause: errors.Wrapf(e.cause, format, args...)}
	case *ArityError:
		return &ArityError{cause: errors.Wrapf(e.cause, format, args...)}
	case *DomainError:
		return &DomainError{cause: errors.Wrapf(e.cause, format, args...)}
	case *UserError:
		return &UserError{cause: errors.Wrapf(e.cause, format, args...)}
	default:
		return errors.Wrapf(err, format, args...)
	}
}
