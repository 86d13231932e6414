// Package symbol defines the two grammar symbol variants — Construct
// (non-terminal) and Token (terminal) — and interns them so that equal
// inputs always yield the same logical Symbol value.
package symbol

import (
	"regexp"
	"sync"
)

// Symbol is the sum type dispatched by the parser, the grammar builder
// and the typed interpreter. Construct and Token are its only variants;
// Dispatch (see dispatch.go) treats the two exhaustively.
type Symbol interface {
	// symbolTag is unexported so no other package can introduce a third
	// variant; adding one here is a deliberate, breaking change.
	symbolTag()
	String() string
}

// Construct is a non-terminal symbol identified by name.
type Construct struct {
	name string
}

func (*Construct) symbolTag() {}

// Name returns the construct's name.
func (c *Construct) Name() string { return c.name }

func (c *Construct) String() string { return c.name }

// Token is a terminal symbol identified by name and regular expression.
// Name may be empty: an anonymous token is legal, matches normally, but
// never surfaces in the typed interpreter (ch. 4.5).
type Token struct {
	name       string
	patternSrc string
	pattern    *regexp.Regexp
}

func (*Token) symbolTag() {}

// Name returns the token's name, or "" if anonymous.
func (t *Token) Name() string { return t.name }

// Anonymous reports whether the token has no name.
func (t *Token) Anonymous() bool { return t.name == "" }

// Pattern returns the compiled regular expression backing this token.
func (t *Token) Pattern() *regexp.Regexp { return t.pattern }

// PatternSource returns the regex source string the token was built from.
func (t *Token) PatternSource() string { return t.patternSrc }

func (t *Token) String() string {
	if t.name == "" {
		return ":" + t.patternSrc
	}
	return t.name + ":" + t.patternSrc
}

// Table interns Constructs and Tokens: constructing a Symbol from equal
// inputs through the same Table returns the identical *Construct/*Token
// value. The zero Table is ready to use.
type Table struct {
	mu         sync.Mutex
	constructs map[string]*Construct
	tokens     map[tokenKey]*Token
}

type tokenKey struct {
	name, patternSrc string
}

// Construct interns and returns the Construct named name. Panics on an
// empty name — callers must validate before interning (grammar-builder
// parsing validates identifier shape up front).
func (tb *Table) Construct(name string) *Construct {
	if name == "" {
		panic("symbol: construct name must not be empty")
	}

	tb.mu.Lock()
	defer tb.mu.Unlock()

	if tb.constructs == nil {
		tb.constructs = make(map[string]*Construct)
	}
	if c, ok := tb.constructs[name]; ok {
		return c
	}

	c := &Construct{name: name}
	tb.constructs[name] = c
	return c
}

// Token interns and returns the Token identified by (name, patternSrc),
// compiling patternSrc the first time it is seen for that name. name may
// be empty (anonymous token); an anonymous token is interned by pattern
// source alone, so two `:re` specs with the same regex share one Token.
func (tb *Table) Token(name, patternSrc string) (*Token, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	key := tokenKey{name, patternSrc}
	if tb.tokens == nil {
		tb.tokens = make(map[tokenKey]*Token)
	}
	if t, ok := tb.tokens[key]; ok {
		return t, nil
	}

	re, e := regexp.Compile(patternSrc)
	if e != nil {
		return nil, e
	}

	t := &Token{name: name, patternSrc: patternSrc, pattern: re}
	tb.tokens[key] = t
	return t, nil
}

// Equal reports whether two Symbols are the same variant with the same
// identity (by value, not merely by Table identity — two distinct Tables
// interning the same inputs still compare Equal).
func Equal(a, b Symbol) bool {
	switch av := a.(type) {
	case *Construct:
		bv, ok := b.(*Construct)
		return ok && av.name == bv.name
	case *Token:
		bv, ok := b.(*Token)
		return ok && av.name == bv.name && av.patternSrc == bv.patternSrc
	default:
		return false
	}
}
