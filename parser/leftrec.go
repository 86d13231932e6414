package parser

import (
	"sort"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
)

const (
	white = iota
	gray
	black
)

// checkLeftRecursion builds the head -> first-body-symbol graph and
// fails if any construct reaches itself. Must run before any parse.
func checkLeftRecursion(g *grammar.Grammar) error {
	edges := make(map[*symbol.Construct][]*symbol.Construct)
	for head, rules := range g.Rules {
		for _, r := range rules {
			if len(r.Body) == 0 {
				continue
			}
			if c, ok := r.Body[0].(*symbol.Construct); ok {
				edges[head] = append(edges[head], c)
			}
		}
	}

	color := make(map[*symbol.Construct]int, len(g.ConstructsByName))

	var dfs func(c *symbol.Construct) error
	dfs = func(c *symbol.Construct) error {
		color[c] = gray
		for _, next := range edges[c] {
			if color[next] == gray {
				return leftRecursionError(c, next)
			}
			if color[next] == white {
				if e := dfs(next); e != nil {
					return e
				}
			}
		}
		color[c] = black
		return nil
	}

	// Iterate constructs in a stable, deterministic order so the
	// reported cycle edge doesn't depend on map iteration order.
	names := make([]string, 0, len(g.ConstructsByName))
	for n := range g.ConstructsByName {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		c := g.ConstructsByName[n]
		if color[c] == white {
			if e := dfs(c); e != nil {
				return e
			}
		}
	}
	return nil
}
