package parser

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
	"github.com/ava12/quickparse/synstree"
)

// memoKey is the (Symbol, start_index) pair the memo is keyed on. Symbol
// values are interned, so equal inputs compare equal as map/cache keys.
type memoKey struct {
	sym symbol.Symbol
	pos int
}

// parseContext owns every piece of transient state for a single Parse
// call: the memo, the farthest-expected-token cursor and the
// farthest-unconsumed-position cursor. Nothing here is shared across
// calls, which is what makes concurrent parsing of independent inputs
// against one Grammar safe without locking.
type parseContext struct {
	grammar *grammar.Grammar
	source  string
	memo    *lru.Cache[memoKey, synstree.Node]

	expectedAt     int
	expectedTokens []*symbol.Token
	expectedSeen   map[*symbol.Token]bool

	unexpectedAt int
}

func newParseContext(g *grammar.Grammar, source string, memoCapacity int) (*parseContext, error) {
	cache, e := lru.New[memoKey, synstree.Node](memoCapacity)
	if e != nil {
		return nil, e
	}

	return &parseContext{
		grammar:      g,
		source:       source,
		memo:         cache,
		expectedSeen: make(map[*symbol.Token]bool),
	}, nil
}

// failure turns the two cursors into the one structured error the spec
// calls for: ExpectedSymbols when we know what would have been
// accepted, UnexpectedSymbol when the axiom matched but left a
// trailing, ignore-pattern-stripped remainder.
func (pc *parseContext) failure() error {
	if len(pc.expectedTokens) > 0 {
		return expectedSymbolsError(pc.source, pc.expectedAt, pc.expectedTokens)
	}
	return unexpectedSymbolError(pc.source, pc.unexpectedAt)
}

func (pc *parseContext) match(sym symbol.Symbol, pos int) synstree.Node {
	var node synstree.Node
	symbol.Dispatch(sym,
		func(c *symbol.Construct) { node = pc.matchConstruct(c, pos, false) },
		func(t *symbol.Token) { node = pc.matchToken(t, pos) },
	)
	return node
}

func (pc *parseContext) matchToken(t *symbol.Token, pos int) synstree.Node {
	key := memoKey{t, pos}
	if cached, ok := pc.memo.Get(key); ok {
		return cached
	}

	node := pc.attemptToken(t, pos)
	pc.memo.Add(key, node)
	return node
}

func (pc *parseContext) attemptToken(t *symbol.Token, pos int) synstree.Node {
	if n := pc.tryTokenAt(t, pos); n != nil {
		return n
	}

	skipped := pc.grammar.SkipIgnored(pc.source, pos)
	if n := pc.tryTokenAt(t, skipped); n != nil {
		return n
	}

	if skipped > pc.expectedAt {
		pc.expectedAt = skipped
		pc.expectedTokens = pc.expectedTokens[:0]
		pc.expectedSeen = make(map[*symbol.Token]bool)
	}
	if skipped == pc.expectedAt && !pc.expectedSeen[t] {
		pc.expectedSeen[t] = true
		pc.expectedTokens = append(pc.expectedTokens, t)
	}
	return nil
}

func (pc *parseContext) tryTokenAt(t *symbol.Token, pos int) synstree.Node {
	if pos > len(pc.source) {
		return nil
	}
	loc := t.Pattern().FindStringIndex(pc.source[pos:])
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return synstree.NewTokenNode(pc.source, pos, pos+loc[1], t.Name(), t.PatternSource())
}

func (pc *parseContext) matchConstruct(head *symbol.Construct, pos int, root bool) synstree.Node {
	key := memoKey{head, pos}
	if cached, ok := pc.memo.Get(key); ok {
		return cached
	}

	node := pc.attemptConstruct(head, pos, root)
	pc.memo.Add(key, node)
	return node
}

func (pc *parseContext) attemptConstruct(head *symbol.Construct, pos int, root bool) synstree.Node {
	for _, r := range pc.grammar.RulesFor(head) {
		children := make([]synstree.Node, 0, len(r.Body))
		cursor := pos
		matched := true

		for _, sym := range r.Body {
			child := pc.match(sym, cursor)
			if child == nil {
				matched = false
				break
			}
			children = append(children, child)
			cursor = child.End()
		}
		if !matched {
			continue
		}

		start, end := pos, pos
		if len(children) > 0 {
			start = children[0].Start()
			end = children[len(children)-1].End()
		}

		if root {
			end = pc.grammar.SkipIgnored(pc.source, end)
			if end > pc.unexpectedAt {
				pc.unexpectedAt = end
			}
			if end != len(pc.source) {
				continue
			}
		}

		return synstree.NewConstructNode(pc.source, start, end, head.Name(), r, children)
	}

	return nil
}
