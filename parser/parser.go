// Package parser implements a memoized recursive-descent parser over a
// compiled grammar.Grammar: left-recursion is rejected at construction
// time, alternatives are tried in rule order (longer body first), and
// parse failures are reported with the farthest position reached.
package parser

import (
	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
	"github.com/ava12/quickparse/synstree"
)

// DefaultMemoCapacity is the LRU memo bound used when New is called
// without an explicit capacity. 200 is a performance detail, not a
// correctness requirement (see the memo in context.go).
const DefaultMemoCapacity = 200

// Parser compiles once against a Grammar and can then run any number of
// independent Parse calls; it carries no mutable state of its own, so
// the same Parser may be used concurrently by callers that don't share
// a mutable interpreter.
type Parser struct {
	grammar      *grammar.Grammar
	memoCapacity int
}

// New builds a Parser for g, failing with *LeftRecursionError if the
// head -> first-body-symbol graph contains a cycle.
func New(g *grammar.Grammar) (*Parser, error) {
	return NewWithMemoCapacity(g, DefaultMemoCapacity)
}

// NewWithMemoCapacity is New with an explicit memo bound, for callers
// tuning memory/throughput for large inputs.
func NewWithMemoCapacity(g *grammar.Grammar, memoCapacity int) (*Parser, error) {
	if e := checkLeftRecursion(g); e != nil {
		return nil, e
	}

	return &Parser{grammar: g, memoCapacity: memoCapacity}, nil
}

// Parse parses source against the grammar's axiom construct.
func (p *Parser) Parse(source string) (*synstree.ConstructNode, error) {
	return p.ParseFrom(source, p.grammar.Axiom)
}

// ParseFrom parses source against an explicit axiom construct, which
// need not be the grammar's declared axiom (useful for testing a single
// production in isolation).
func (p *Parser) ParseFrom(source string, axiom *symbol.Construct) (*synstree.ConstructNode, error) {
	ctx, e := newParseContext(p.grammar, source, p.memoCapacity)
	if e != nil {
		return nil, e
	}

	node := ctx.matchConstruct(axiom, 0, true)
	if node == nil {
		return nil, ctx.failure()
	}

	return node.(*synstree.ConstructNode), nil
}
