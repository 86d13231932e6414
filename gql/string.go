package gql

import (
	"sort"
	"strings"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
)

// String renders g back into the textual form Parse accepts, ordering
// ignore patterns and rules deterministically (not necessarily in the
// order the original Builder saw them) so that Parse(name, String(g))
// accepts the same language as g (spec section 8 property 5), even
// though the round-trip is not guaranteed byte-identical to whatever
// text g itself may have come from. g.Axiom's rules are always written
// first: Parse assigns the axiom to the head of the first rule it
// reads, so emitting rules in plain alphabetical order would silently
// re-root any grammar whose axiom doesn't sort first among its
// constructs.
func String(g *grammar.Grammar) string {
	var sb strings.Builder

	patterns := make([]string, 0, len(g.Ignored))
	for _, re := range g.Ignored {
		patterns = append(patterns, re.String())
	}
	sort.Strings(patterns)
	for _, p := range patterns {
		sb.WriteString("ignore:")
		sb.WriteString(p)
		sb.WriteString("/\n")
	}

	names := make([]string, 0, len(g.Rules))
	for c := range g.Rules {
		if c == g.Axiom {
			continue
		}
		names = append(names, c.Name())
	}
	sort.Strings(names)

	names = append([]string{g.Axiom.Name()}, names...)

	for _, name := range names {
		c := g.ConstructsByName[name]
		for _, r := range g.Rules[c] {
			sb.WriteString(name)
			sb.WriteString(" -> ")
			sb.WriteString(bodyString(r))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func bodyString(r *grammar.Rule) string {
	if len(r.Body) == 0 {
		return "/"
	}

	parts := make([]string, len(r.Body))
	for i, sym := range r.Body {
		symbol.Dispatch(sym,
			func(c *symbol.Construct) { parts[i] = c.Name() },
			func(t *symbol.Token) { parts[i] = t.Name() + ":" + t.PatternSource() + "/" },
		)
	}
	return strings.Join(parts, " ")
}
