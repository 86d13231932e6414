// Package fold implements the single post-order reduction used by the
// typed interpreter (package interp) and available to custom tree
// walkers: one value per syntax-tree node, with a
// nil return from either callback suppressing that node's contribution
// to its parent.
package fold

import "github.com/ava12/quickparse/synstree"

// TokenFunc computes the value contributed by a token leaf. A nil
// return drops the node.
type TokenFunc func(n *synstree.TokenNode) interface{}

// ConstructFunc computes the value contributed by a construct node from
// its own non-nil children's values, in order. A nil return drops the
// node (and, if it was the tree root, the fold's overall result is nil).
type ConstructFunc func(n *synstree.ConstructNode, children []interface{}) interface{}

// Fold drives a post-order traversal of root, invoking tokenFn for each
// TokenNode and constructFn for each ConstructNode on the way back up,
// and returns the value produced for root (nil if root's handler
// suppressed it).
func Fold(root synstree.Node, tokenFn TokenFunc, constructFn ConstructFunc) interface{} {
	var stack [][]interface{}
	var result interface{}

	push := func(v interface{}) {
		top := len(stack) - 1
		stack[top] = append(stack[top], v)
	}

	v := &synstree.Visitor{
		EnterConstruct: func(n *synstree.ConstructNode) {
			stack = append(stack, nil)
		},
		Token: func(n *synstree.TokenNode) {
			if val := tokenFn(n); val != nil {
				push(val)
			}
		},
		ExitConstruct: func(n *synstree.ConstructNode) {
			children := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			val := constructFn(n, children)
			if val == nil {
				return
			}

			if len(stack) == 0 {
				result = val
			} else {
				push(val)
			}
		},
	}

	synstree.Walk(root, v)
	return result
}
