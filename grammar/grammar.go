// Package grammar holds the compiled, frozen grammar representation —
// the set of ignored patterns, the axiom construct and the per-construct
// rule tables — plus the Builder that assembles and validates one.
package grammar

import (
	"regexp"
	"sort"

	"github.com/ava12/quickparse/symbol"
)

// Grammar is immutable once returned by Builder.Build. Rules are stored
// sorted in Rule order (longer body first, then creation order).
type Grammar struct {
	Ignored          []*regexp.Regexp
	Axiom            *symbol.Construct
	Rules            map[*symbol.Construct][]*Rule
	TokensByName     map[string]*symbol.Token
	ConstructsByName map[string]*symbol.Construct
}

// RulesFor returns the ordered rule list for c, or nil if c is unknown
// to the grammar.
func (g *Grammar) RulesFor(c *symbol.Construct) []*Rule {
	return g.Rules[c]
}

// SkipIgnored advances pos past any run of ignored-pattern matches
// starting at pos, iterating until no ignored pattern matches a
// non-empty prefix of source[pos:] (empty matches never advance pos). Idempotent:
// calling it again at the returned position is a no-op.
func (g *Grammar) SkipIgnored(source string, pos int) int {
	for {
		advanced := false
		for _, re := range g.Ignored {
			loc := re.FindStringIndex(source[pos:])
			if loc != nil && loc[0] == 0 && loc[1] > 0 {
				pos += loc[1]
				advanced = true
				break
			}
		}
		if !advanced {
			return pos
		}
	}
}

// sortRules orders rs in place per Rule.Less.
func sortRules(rs []*Rule) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Less(rs[j])
	})
}
