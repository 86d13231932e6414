package grammar

import (
	"regexp"

	"github.com/ava12/quickparse/symbol"
)

// Builder assembles a Grammar from rules added in any order, then
// validates it in Build. The first rule ever added establishes the
// default axiom (used when Build is called without an explicit name).
type Builder struct {
	rulesByHead  map[*symbol.Construct][]*Rule
	nextSeq      int
	ignoredSrc   map[string]bool
	ignored      []*regexp.Regexp
	defaultAxiom *symbol.Construct
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		rulesByHead: make(map[*symbol.Construct][]*Rule),
		ignoredSrc:  make(map[string]bool),
	}
}

// AddRule appends a new rule head -> body. Returns the created Rule so
// callers can reference it (for example in diagnostics or tests).
func (b *Builder) AddRule(head *symbol.Construct, body ...symbol.Symbol) *Rule {
	if b.defaultAxiom == nil {
		b.defaultAxiom = head
	}

	r := &Rule{Head: head, Body: append([]symbol.Symbol(nil), body...), Seq: b.nextSeq}
	b.nextSeq++
	b.rulesByHead[head] = append(b.rulesByHead[head], r)
	return r
}

// IgnorePatterns adds each pattern to the ignore set, skipping any whose
// source string is already present. Returns the first regexp compile
// error encountered, if any.
func (b *Builder) IgnorePatterns(patterns ...string) error {
	for _, p := range patterns {
		if b.ignoredSrc[p] {
			continue
		}
		re, e := regexp.Compile(p)
		if e != nil {
			return e
		}
		b.ignoredSrc[p] = true
		b.ignored = append(b.ignored, re)
	}
	return nil
}

// Build finalizes the grammar using the default axiom (the head of the
// first rule ever added).
func (b *Builder) Build() (*Grammar, error) {
	var name string
	if b.defaultAxiom != nil {
		name = b.defaultAxiom.Name()
	}
	return b.build(name)
}

// BuildAxiom finalizes the grammar using axiomName as the start
// construct instead of the default.
func (b *Builder) BuildAxiom(axiomName string) (*Grammar, error) {
	return b.build(axiomName)
}

func (b *Builder) build(axiomName string) (*Grammar, error) {
	constructsByName := make(map[string]*symbol.Construct)
	for head := range b.rulesByHead {
		constructsByName[head.Name()] = head
	}

	axiom, ok := constructsByName[axiomName]
	if !ok || len(b.rulesByHead[axiom]) == 0 {
		return nil, noRuleForAxiomError(axiomName)
	}

	// Close the construct set: every construct referenced in a body
	// must be a key of Rules, even if it has no rules of its own.
	rules := make(map[*symbol.Construct][]*Rule, len(b.rulesByHead))
	for head, rs := range b.rulesByHead {
		sorted := append([]*Rule(nil), rs...)
		sortRules(sorted)
		rules[head] = sorted
		constructsByName[head.Name()] = head
	}
	for _, rs := range b.rulesByHead {
		for _, r := range rs {
			for _, sym := range r.Body {
				if c, isConstruct := sym.(*symbol.Construct); isConstruct {
					if _, known := rules[c]; !known {
						rules[c] = nil
					}
					constructsByName[c.Name()] = c
				}
			}
		}
	}

	tokensByName := make(map[string]*symbol.Token)
	firstRuleForToken := make(map[string]*Rule)
	for _, rs := range rules {
		for _, r := range rs {
			for _, sym := range r.Body {
				tok, isToken := sym.(*symbol.Token)
				if !isToken || tok.Anonymous() {
					continue
				}

				if prior, seen := tokensByName[tok.Name()]; seen {
					if !symbol.Equal(prior, tok) {
						return nil, duplicateTokenNameError(tok.Name(), firstRuleForToken[tok.Name()], r)
					}
					continue
				}

				tokensByName[tok.Name()] = tok
				firstRuleForToken[tok.Name()] = r
			}
		}
	}

	return &Grammar{
		Ignored:          b.ignored,
		Axiom:            axiom,
		Rules:            rules,
		TokensByName:     tokensByName,
		ConstructsByName: constructsByName,
	}, nil
}
