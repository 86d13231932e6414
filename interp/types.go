// Package interp implements the typed interpreter: reflective wiring of
// user-declared handler functions to grammar symbols, validated in three
// passes (handler discovery, return-type unification, parameter
// signature reconciliation) and then driven over a syntax tree by the
// shared fold package.
package interp

import "reflect"

// Sequence is the declared return type every handler-less construct is
// given by default (spec section 4.5.2's "sequence type"). At
// evaluation time Analyze additionally performs the default merge
// described in section 4.5.4: forwarding a single nested Sequence,
// flattening one level of nested Sequences among siblings, or returning
// the raw child list.
type Sequence []interface{}

var (
	sequenceType = reflect.TypeOf(Sequence(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringType   = reflect.TypeOf("")
)

// handler is a validated, reflect-bound user function plus the tags it
// was registered under.
type handler struct {
	fn         reflect.Value
	fnType     reflect.Type
	paramTypes []reflect.Type
	returnType reflect.Type // nil means the handler returns no value ("void")
	hasError   bool
}

// splitSignature classifies a handler function's reflect.Type into its
// parameter types and its (value, error) return shape. Accepted return
// shapes: zero returns, a single error, a single non-error value, or
// (value, error).
func splitSignature(fnType reflect.Type) (paramTypes []reflect.Type, returnType reflect.Type, hasError bool, ok bool) {
	if fnType.Kind() != reflect.Func || fnType.IsVariadic() {
		return nil, nil, false, false
	}

	paramTypes = make([]reflect.Type, fnType.NumIn())
	for i := range paramTypes {
		paramTypes[i] = fnType.In(i)
	}

	switch fnType.NumOut() {
	case 0:
		return paramTypes, nil, false, true
	case 1:
		out := fnType.Out(0)
		if out == errorType {
			return paramTypes, nil, true, true
		}
		return paramTypes, out, false, true
	case 2:
		if fnType.Out(1) != errorType {
			return nil, nil, false, false
		}
		return paramTypes, fnType.Out(0), true, true
	default:
		return nil, nil, false, false
	}
}

// invoke calls h with args, unwrapping the (value, error) convention
// into a single interface{}/error pair. A void handler returns a nil
// value.
func (h *handler) invoke(args []reflect.Value) (interface{}, error) {
	out := h.fn.Call(args)
	if h.hasError {
		errOut := out[len(out)-1]
		if !errOut.IsNil() {
			return nil, errOut.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
