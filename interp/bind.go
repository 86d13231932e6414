package interp

import (
	"reflect"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
)

// Binder collects handler registrations before Build runs the three
// validation passes from spec section 4.5: handler discovery, return-type
// unification per construct, and parameter signature reconciliation.
// Go has no annotations, so tags are supplied explicitly at registration
// instead of being read off the function itself — the reflective
// dispatch, type-relation and signature-reconciliation logic below is
// what spec section 4.5 actually means by "reflective".
type Binder struct {
	grammar    *grammar.Grammar
	tokenRegs  []registration
	constrRegs []registration
}

type registration struct {
	names []string
	fn    reflect.Value
}

// NewBinder starts a Binder for g.
func NewBinder(g *grammar.Grammar) *Binder {
	return &Binder{grammar: g}
}

// Token registers fn as the handler for one or more token names. fn must
// take zero parameters or one string-like parameter and return at most
// (value, error) or a bare value or a bare error.
func (b *Binder) Token(fn interface{}, names ...string) *Binder {
	b.tokenRegs = append(b.tokenRegs, registration{names: names, fn: reflect.ValueOf(fn)})
	return b
}

// Construct registers fn as the handler for one or more construct names.
func (b *Binder) Construct(fn interface{}, names ...string) *Binder {
	b.constrRegs = append(b.constrRegs, registration{names: names, fn: reflect.ValueOf(fn)})
	return b
}

// Build runs handler discovery, return-type unification and parameter
// reconciliation, and returns a ready-to-use Interpreter.
func (b *Binder) Build() (*Interpreter, error) {
	tokenHandlers, e := b.discoverTokenHandlers()
	if e != nil {
		return nil, e
	}

	constructHandlers, e := b.discoverConstructHandlers()
	if e != nil {
		return nil, e
	}

	returnTypes, e := unifyReturnTypes(b.grammar, constructHandlers)
	if e != nil {
		return nil, e
	}

	if e := reconcileParameters(b.grammar, tokenHandlers, constructHandlers, returnTypes); e != nil {
		return nil, e
	}

	return &Interpreter{
		grammar:           b.grammar,
		tokenHandlers:     tokenHandlers,
		constructHandlers: constructHandlers,
		returnTypes:       returnTypes,
		treeByResult:      make(map[interface{}]interface{}),
	}, nil
}

// discoverTokenHandlers is spec 4.5.1's token-handler half: names must
// be non-empty, known, unique, and the function's arity/parameter type
// must fit the string-like contract.
func (b *Binder) discoverTokenHandlers() (map[string]*handler, error) {
	result := make(map[string]*handler)

	for _, reg := range b.tokenRegs {
		paramTypes, returnType, hasError, ok := splitSignature(reg.fn.Type())
		if !ok {
			return nil, tokenMethodParameterError(joinNames(reg.names))
		}
		if len(paramTypes) > 1 || (len(paramTypes) == 1 && !stringType.AssignableTo(paramTypes[0])) {
			return nil, tokenMethodParameterError(joinNames(reg.names))
		}

		h := &handler{fn: reg.fn, fnType: reg.fn.Type(), paramTypes: paramTypes, returnType: returnType, hasError: hasError}

		for _, name := range reg.names {
			if name == "" {
				return nil, undefinedTokenError(name)
			}
			if _, known := b.grammar.TokensByName[name]; !known {
				return nil, undefinedTokenError(name)
			}
			if _, dup := result[name]; dup {
				return nil, doubleTokenAnnotationError(name)
			}
			result[name] = h
		}
	}

	return result, nil
}

// discoverConstructHandlers is spec 4.5.1's construct-handler half.
func (b *Binder) discoverConstructHandlers() (map[string]*handler, error) {
	result := make(map[string]*handler)

	for _, reg := range b.constrRegs {
		paramTypes, returnType, hasError, ok := splitSignature(reg.fn.Type())
		if !ok {
			return nil, undefinedConstructError(joinNames(reg.names))
		}

		h := &handler{fn: reg.fn, fnType: reg.fn.Type(), paramTypes: paramTypes, returnType: returnType, hasError: hasError}

		for _, name := range reg.names {
			if _, known := b.grammar.Rules[constructByName(b.grammar, name)]; name == "" || !known {
				return nil, undefinedConstructError(name)
			}
			if _, dup := result[name]; dup {
				return nil, doubleConstructAnnotationError(name)
			}
			result[name] = h
		}
	}

	return result, nil
}

func constructByName(g *grammar.Grammar, name string) *symbol.Construct {
	return g.ConstructsByName[name]
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "<anonymous>"
	}
	s := names[0]
	for _, n := range names[1:] {
		s += "," + n
	}
	return s
}

// unifyReturnTypes computes, for each known construct, the declared
// return type used by reconcileParameters and by Analyze's default
// merge: a handler's return type if one is bound, else Sequence.
// Mirrors quickparse.semantics.interpreters.typed.TypedInterpreter's two
// passes over every rule (by head, then only heads without a handler);
// under this package's tag-uniqueness invariant every rule sharing a
// head maps to the same handler (or none), so the mismatch branches are
// structurally unreachable here exactly as they are in the original —
// kept for fidelity and because a future relaxation of that invariant
// (per-rule overloads) would make them reachable again.
func unifyReturnTypes(g *grammar.Grammar, constructHandlers map[string]*handler) (map[*symbol.Construct]reflect.Type, error) {
	result := make(map[*symbol.Construct]reflect.Type, len(g.ConstructsByName))
	handlerOf := make(map[*symbol.Construct]*handler, len(constructHandlers))

	for head := range g.Rules {
		h, has := constructHandlers[head.Name()]
		if !has {
			continue
		}

		if prior, seen := handlerOf[head]; seen {
			if !typeRelated(h.returnType, prior.returnType) {
				return nil, returnTypeMismatchError(head.Name())
			}
			if moreSpecific(h.returnType, prior.returnType) {
				handlerOf[head] = h
				result[head] = h.returnType
			}
			continue
		}

		handlerOf[head] = h
		result[head] = h.returnType
	}

	for head := range g.Rules {
		if _, has := result[head]; has {
			continue
		}
		result[head] = sequenceType
	}

	for head, typ := range result {
		if _, hasHandler := handlerOf[head]; hasHandler {
			continue
		}
		if !typeRelated(typ, sequenceType) {
			return nil, defaultReturnTypeMismatchError(head.Name())
		}
	}

	return result, nil
}

// typeRelated reports whether a and b are related by Go's assignability
// in either direction (the "subtype" relation spec 4.5.2 asks for: the
// empty interface relates to everything, and identical types always
// relate).
func typeRelated(a, b reflect.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.AssignableTo(b) || b.AssignableTo(a)
}

// moreSpecific reports whether a should be preferred over b when both
// relate: a concrete type is more specific than an interface it
// implements.
func moreSpecific(a, b reflect.Type) bool {
	if a == b {
		return false
	}
	return a.AssignableTo(b)
}

// reconcileParameters is spec 4.5.3: for every rule with a bound
// handler, build the expected parameter list from the rule body and
// check it against the handler's declared signature.
func reconcileParameters(g *grammar.Grammar, tokenHandlers, constructHandlers map[string]*handler, returnTypes map[*symbol.Construct]reflect.Type) error {
	for head, rules := range g.Rules {
		h, has := constructHandlers[head.Name()]
		if !has {
			continue
		}

		for _, r := range rules {
			expected := expectedParamTypes(r, tokenHandlers, returnTypes)

			if len(expected) != len(h.paramTypes) {
				return parameterCountMismatchError(r, len(expected), len(h.paramTypes))
			}

			for i, exp := range expected {
				if !exp.AssignableTo(h.paramTypes[i]) {
					return parameterTypeMismatchError(r, i, exp, h.paramTypes[i])
				}
			}
		}
	}

	return nil
}

func expectedParamTypes(r *grammar.Rule, tokenHandlers map[string]*handler, returnTypes map[*symbol.Construct]reflect.Type) []reflect.Type {
	var expected []reflect.Type

	for _, sym := range r.Body {
		symbol.Dispatch(sym,
			func(c *symbol.Construct) {
				if t := returnTypes[c]; t != nil {
					expected = append(expected, t)
				}
			},
			func(t *symbol.Token) {
				if t.Anonymous() {
					return
				}
				if th, has := tokenHandlers[t.Name()]; has {
					if th.returnType == nil {
						return // void token handler contributes nothing
					}
					expected = append(expected, th.returnType)
				} else {
					expected = append(expected, stringType)
				}
			},
		)
	}

	return expected
}
