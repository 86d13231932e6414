package interp

import (
	"reflect"

	qerr "github.com/ava12/quickparse/errors"
	"github.com/ava12/quickparse/fold"
	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
	"github.com/ava12/quickparse/synstree"
)

// Interpreter folds a syntax tree into a domain value by dispatching to
// the handlers a Binder validated against the grammar. Per spec section
// 5, an Interpreter instance holds per-evaluation mutable state
// (currentNode, treeByResult) and must not be shared across concurrent
// Analyze calls.
type Interpreter struct {
	grammar           *grammar.Grammar
	tokenHandlers     map[string]*handler
	constructHandlers map[string]*handler
	returnTypes       map[*symbol.Construct]reflect.Type

	currentNode  synstree.Node
	treeByResult map[interface{}]interface{}
}

// Grammar returns the grammar this interpreter was bound against.
func (ip *Interpreter) Grammar() *grammar.Grammar { return ip.grammar }

// CurrentNode returns the node whose handler is presently executing, so
// a handler can report precise source positions on failure. Only
// meaningful while called from inside a handler invoked by Analyze.
func (ip *Interpreter) CurrentNode() synstree.Node { return ip.currentNode }

// NodeForResult returns the syntax node whose handler produced result,
// for diagnostics. Last write wins on an equality collision between two
// distinct nodes' results (spec 9's open question); ok is false if
// result was never produced by this interpreter's last Analyze call, or
// if its type is not comparable (such results are never recorded).
func (ip *Interpreter) NodeForResult(result interface{}) (synstree.Node, bool) {
	if !hashable(result) {
		return nil, false
	}
	n, ok := ip.treeByResult[result]
	if !ok {
		return nil, false
	}
	node, _ := n.(synstree.Node)
	return node, node != nil
}

// Analyze folds root bottom-up into a domain value, invoking bound
// handlers and falling back to the default sequence merge (spec 4.5.4)
// where no handler is bound. Handler panics/errors are wrapped once into
// a *qerr.Error of kind Semantics with the original cause preserved.
func (ip *Interpreter) Analyze(root synstree.Node) (result interface{}, err error) {
	ip.treeByResult = make(map[interface{}]interface{})

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = qerr.Wrap(e)
			} else {
				err = qerr.Wrap(&panicValue{r})
			}
			result = nil
		}
	}()

	var semErr error
	value := fold.Fold(root,
		func(n *synstree.TokenNode) interface{} {
			if semErr != nil {
				return nil
			}
			v, e := ip.tokenValue(n)
			if e != nil {
				semErr = e
				return nil
			}
			return v
		},
		func(n *synstree.ConstructNode, children []interface{}) interface{} {
			if semErr != nil {
				return nil
			}
			v, e := ip.constructValue(n, children)
			if e != nil {
				semErr = e
				return nil
			}
			return v
		},
	)

	if semErr != nil {
		return nil, qerr.Wrap(semErr)
	}

	return value, nil
}

type panicValue struct{ v interface{} }

func (p *panicValue) Error() string {
	if e, ok := p.v.(error); ok {
		return e.Error()
	}
	return "panic in handler"
}

func (ip *Interpreter) tokenValue(n *synstree.TokenNode) (interface{}, error) {
	h, has := ip.tokenHandlers[n.Name()]
	if !has {
		if n.Name() == "" {
			return nil, nil
		}
		ip.treeByResult[n.Value()] = n
		return n.Value(), nil
	}

	ip.currentNode = n
	args := make([]reflect.Value, 0, 1)
	if len(h.paramTypes) == 1 {
		args = append(args, reflect.ValueOf(n.Value()))
	}

	value, e := h.invoke(args)
	if e != nil {
		return nil, e
	}
	if hashable(value) {
		ip.treeByResult[value] = n
	}
	return value, nil
}

// hashable reports whether v can key treeByResult; nil and values of
// non-comparable types (slices, maps, funcs) are not recorded.
func hashable(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}

func (ip *Interpreter) constructValue(n *synstree.ConstructNode, children []interface{}) (interface{}, error) {
	h, has := ip.constructHandlers[n.Name()]
	if !has {
		return defaultSequenceMerge(children), nil
	}

	if len(children) != len(h.paramTypes) {
		return nil, qerr.New(qerr.ParameterCountMismatch,
			"construct %q: handler expects %d arguments at runtime, node folded to %d non-suppressed children",
			n.Name(), len(h.paramTypes), len(children))
	}

	ip.currentNode = n
	args := make([]reflect.Value, len(children))
	for i, c := range children {
		args[i] = argValue(c, h.paramTypes[i])
	}

	value, e := h.invoke(args)
	if e != nil {
		return nil, e
	}
	if hashable(value) {
		ip.treeByResult[value] = n
	}
	return value, nil
}

// argValue wraps a nil interface child as the zero value of its
// expected parameter type, so a handler parameter typed as a concrete
// pointer/slice/interface still receives a well-formed reflect.Value.
func argValue(v interface{}, paramType reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(paramType)
	}
	return reflect.ValueOf(v)
}

// defaultSequenceMerge is spec 4.5.4's fallback for handler-less
// constructs: forward a lone nested Sequence, flatten Sequence-typed
// siblings one level into a merged Sequence, or return the children
// as-is.
func defaultSequenceMerge(children []interface{}) interface{} {
	if len(children) == 1 {
		if seq, ok := children[0].(Sequence); ok {
			return seq
		}
		return Sequence(children)
	}

	if len(children) > 1 {
		merged := make(Sequence, 0, len(children))
		for _, c := range children {
			if seq, ok := c.(Sequence); ok {
				merged = append(merged, seq...)
			} else {
				merged = append(merged, c)
			}
		}
		return merged
	}

	return Sequence(children)
}
