package interp

import (
	"reflect"

	qerr "github.com/ava12/quickparse/errors"
	"github.com/ava12/quickparse/grammar"
)

// UndefinedTokenError reports a token handler tag naming a token the
// grammar doesn't declare.
type UndefinedTokenError struct {
	Err  *qerr.Error
	Name string
}

func (e *UndefinedTokenError) Error() string { return e.Err.Error() }

func (e *UndefinedTokenError) Unwrap() error { return e.Err }

func undefinedTokenError(name string) *UndefinedTokenError {
	return &UndefinedTokenError{
		Err:  qerr.New(qerr.UndefinedToken, "handler tagged for undefined token %q", name),
		Name: name,
	}
}

// UndefinedConstructError reports a construct handler tag naming a
// construct the grammar doesn't declare.
type UndefinedConstructError struct {
	Err  *qerr.Error
	Name string
}

func (e *UndefinedConstructError) Error() string { return e.Err.Error() }

func (e *UndefinedConstructError) Unwrap() error { return e.Err }

func undefinedConstructError(name string) *UndefinedConstructError {
	return &UndefinedConstructError{
		Err:  qerr.New(qerr.UndefinedConstruct, "handler tagged for undefined construct %q", name),
		Name: name,
	}
}

// DoubleTokenAnnotationError reports two handlers both tagged for the
// same token name.
type DoubleTokenAnnotationError struct {
	Err  *qerr.Error
	Name string
}

func (e *DoubleTokenAnnotationError) Error() string { return e.Err.Error() }

func (e *DoubleTokenAnnotationError) Unwrap() error { return e.Err }

func doubleTokenAnnotationError(name string) *DoubleTokenAnnotationError {
	return &DoubleTokenAnnotationError{
		Err:  qerr.New(qerr.DoubleTokenAnnotation, "token %q is bound to more than one handler", name),
		Name: name,
	}
}

// DoubleConstructAnnotationError reports two handlers both tagged for
// the same construct name.
type DoubleConstructAnnotationError struct {
	Err  *qerr.Error
	Name string
}

func (e *DoubleConstructAnnotationError) Error() string { return e.Err.Error() }

func (e *DoubleConstructAnnotationError) Unwrap() error { return e.Err }

func doubleConstructAnnotationError(name string) *DoubleConstructAnnotationError {
	return &DoubleConstructAnnotationError{
		Err:  qerr.New(qerr.DoubleConstructAnnotation, "construct %q is bound to more than one handler", name),
		Name: name,
	}
}

// TokenMethodParameterError reports a token handler whose arity/parameter
// type doesn't fit the 0-or-1-string-like-parameter contract.
type TokenMethodParameterError struct {
	Err  *qerr.Error
	Name string
}

func (e *TokenMethodParameterError) Error() string { return e.Err.Error() }

func (e *TokenMethodParameterError) Unwrap() error { return e.Err }

func tokenMethodParameterError(name string) *TokenMethodParameterError {
	return &TokenMethodParameterError{
		Err: qerr.New(qerr.TokenMethodParameter,
			"token handler for %q must take zero parameters or one string-like parameter", name),
		Name: name,
	}
}

// ReturnTypeMismatchError reports two handlers bound (through distinct
// rules) to the same construct with unrelated return types.
type ReturnTypeMismatchError struct {
	Err       *qerr.Error
	Construct string
}

func (e *ReturnTypeMismatchError) Error() string { return e.Err.Error() }

func (e *ReturnTypeMismatchError) Unwrap() error { return e.Err }

func returnTypeMismatchError(constructName string) *ReturnTypeMismatchError {
	return &ReturnTypeMismatchError{
		Err:       qerr.New(qerr.ReturnTypeMismatch, "construct %q has handlers with unrelated return types", constructName),
		Construct: constructName,
	}
}

// DefaultReturnTypeMismatchError reports a handler-less construct whose
// default Sequence return type doesn't relate to a return type already
// established for it.
type DefaultReturnTypeMismatchError struct {
	Err       *qerr.Error
	Construct string
}

func (e *DefaultReturnTypeMismatchError) Error() string { return e.Err.Error() }

func (e *DefaultReturnTypeMismatchError) Unwrap() error { return e.Err }

func defaultReturnTypeMismatchError(constructName string) *DefaultReturnTypeMismatchError {
	return &DefaultReturnTypeMismatchError{
		Err: qerr.New(qerr.DefaultReturnTypeMismatch,
			"construct %q has no handler but its default sequence type conflicts with its established return type",
			constructName),
		Construct: constructName,
	}
}

// ParameterCountMismatchError reports a construct handler whose
// parameter count doesn't match the rule body it's bound to.
type ParameterCountMismatchError struct {
	Err      *qerr.Error
	Rule     *grammar.Rule
	Expected int
	Actual   int
}

func (e *ParameterCountMismatchError) Error() string { return e.Err.Error() }

func (e *ParameterCountMismatchError) Unwrap() error { return e.Err }

func parameterCountMismatchError(r *grammar.Rule, expected, actual int) *ParameterCountMismatchError {
	return &ParameterCountMismatchError{
		Err: qerr.New(qerr.ParameterCountMismatch,
			"handler for rule %q expects %d parameters, rule body yields %d", r.String(), actual, expected),
		Rule:     r,
		Expected: expected,
		Actual:   actual,
	}
}

// ParameterTypeMismatchError reports a construct handler parameter whose
// type can't accept the value the rule body would supply at that
// position.
type ParameterTypeMismatchError struct {
	Err      *qerr.Error
	Rule     *grammar.Rule
	Index    int
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *ParameterTypeMismatchError) Error() string { return e.Err.Error() }

func (e *ParameterTypeMismatchError) Unwrap() error { return e.Err }

func parameterTypeMismatchError(r *grammar.Rule, index int, expected, actual reflect.Type) *ParameterTypeMismatchError {
	return &ParameterTypeMismatchError{
		Err: qerr.New(qerr.ParameterTypeMismatch,
			"handler for rule %q: parameter %d has type %s, cannot accept %s",
			r.String(), index, actual, expected),
		Rule:     r,
		Index:    index,
		Expected: expected,
		Actual:   actual,
	}
}
