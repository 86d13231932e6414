// Package synstree defines the syntax tree produced by one parse call:
// TokenNode leaves and ConstructNode interior nodes, plus the visitor
// protocol shared by the folder and custom tree walkers.
package synstree

import "github.com/ava12/quickparse/grammar"

// Node is the sum type of the syntax tree. Like symbol.Symbol, its tag
// method is unexported so the two variants stay exhaustive.
type Node interface {
	nodeTag()
	Start() int
	End() int
	Name() string
	// Value returns the matched slice of the shared source string.
	Value() string
}

// TokenNode is a terminal leaf: the slice source[Start:End] matched by
// Pattern under the name Name (possibly "" for an anonymous token).
type TokenNode struct {
	source  string
	start   int
	end     int
	name    string
	pattern string
}

func (*TokenNode) nodeTag()        {}
func (n *TokenNode) Start() int    { return n.start }
func (n *TokenNode) End() int      { return n.end }
func (n *TokenNode) Name() string  { return n.name }
func (n *TokenNode) Value() string { return n.source[n.start:n.end] }

// Pattern returns the source-string regex of the matching token.
func (n *TokenNode) Pattern() string { return n.pattern }

// NewTokenNode builds a TokenNode. Exported for callers (the parser,
// tests, custom front-ends) that assemble trees directly.
func NewTokenNode(source string, start, end int, name, pattern string) *TokenNode {
	return &TokenNode{source, start, end, name, pattern}
}

// ConstructNode is an interior node: the span covered by an applied
// Rule and its ordered children.
type ConstructNode struct {
	source   string
	start    int
	end      int
	name     string
	rule     *grammar.Rule
	children []Node
}

func (*ConstructNode) nodeTag()        {}
func (n *ConstructNode) Start() int    { return n.start }
func (n *ConstructNode) End() int      { return n.end }
func (n *ConstructNode) Name() string  { return n.name }
func (n *ConstructNode) Value() string { return n.source[n.start:n.end] }

// Rule returns the rule whose application produced this node.
func (n *ConstructNode) Rule() *grammar.Rule { return n.rule }

// Children returns the node's ordered child list. Do not mutate.
func (n *ConstructNode) Children() []Node { return n.children }

// NewConstructNode builds a ConstructNode.
func NewConstructNode(source string, start, end int, name string, rule *grammar.Rule, children []Node) *ConstructNode {
	return &ConstructNode{source, start, end, name, rule, children}
}

// Visitor is the custom-walker protocol from spec section 6:
// EnterConstruct/ExitConstruct bracket a ConstructNode's children,
// Token is called for each TokenNode leaf in order.
type Visitor struct {
	EnterConstruct func(n *ConstructNode)
	Token          func(n *TokenNode)
	ExitConstruct  func(n *ConstructNode)
}

// Walk drives v over the tree rooted at n, depth-first, in child order.
func Walk(n Node, v *Visitor) {
	switch nn := n.(type) {
	case *TokenNode:
		if v.Token != nil {
			v.Token(nn)
		}
	case *ConstructNode:
		if v.EnterConstruct != nil {
			v.EnterConstruct(nn)
		}
		for _, c := range nn.children {
			Walk(c, v)
		}
		if v.ExitConstruct != nil {
			v.ExitConstruct(nn)
		}
	}
}
