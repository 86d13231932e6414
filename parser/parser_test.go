package parser

import (
	"testing"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
)

func TestNewRejectsLeftRecursion(t *testing.T) {
	// A -> A b | b, spec section 8 seed case 6.
	var tb symbol.Table
	a := tb.Construct("A")
	bTok, _ := tb.Token("b", `b`)

	b := grammar.NewBuilder()
	b.AddRule(a, a, bTok)
	b.AddRule(a, bTok)
	g, e := b.Build()
	if e != nil {
		t.Fatalf("Build: %v", e)
	}

	_, e = New(g)
	if e == nil {
		t.Fatal("expected a left-recursion error")
	}
	lre, ok := e.(*LeftRecursionError)
	if !ok {
		t.Fatalf("got %T, want *LeftRecursionError", e)
	}
	if lre.Head.Name() != "A" || lre.First.Name() != "A" {
		t.Errorf("LeftRecursionError = (%s, %s), want (A, A)", lre.Head.Name(), lre.First.Name())
	}
}

// digitListGrammar builds "List -> Digit Rest; Rest -> Digit Rest | /"
// over single-digit tokens, with whitespace ignored.
func digitListGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	var tb symbol.Table
	list := tb.Construct("List")
	rest := tb.Construct("Rest")
	digit, _ := tb.Token("digit", `[0-9]`)

	b := grammar.NewBuilder()
	if e := b.IgnorePatterns(`\s+`); e != nil {
		t.Fatalf("IgnorePatterns: %v", e)
	}
	b.AddRule(list, digit, rest)
	b.AddRule(rest, digit, rest)
	b.AddRule(rest)

	g, e := b.BuildAxiom("List")
	if e != nil {
		t.Fatalf("Build: %v", e)
	}
	return g
}

func TestParseConsumesIgnoredAroundTokens(t *testing.T) {
	g := digitListGrammar(t)
	p, e := New(g)
	if e != nil {
		t.Fatalf("New: %v", e)
	}

	tree, e := p.Parse("  1 2  3 ")
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}
	// The span starts at the first digit (leading blanks are skipped
	// before the first token) and its end covers the trailing blank.
	if tree.Start() != 2 || tree.End() != len("  1 2  3 ") {
		t.Errorf("tree span = [%d:%d), want [2:%d)", tree.Start(), tree.End(), len("  1 2  3 "))
	}
}

func TestParseFailureReportsExpectedSymbols(t *testing.T) {
	g := digitListGrammar(t)
	p, e := New(g)
	if e != nil {
		t.Fatalf("New: %v", e)
	}

	_, e = p.Parse("")
	if e == nil {
		t.Fatal("expected an error parsing empty input against List")
	}
	if _, ok := e.(*ExpectedSymbolsError); !ok {
		t.Errorf("got %T, want *ExpectedSymbolsError", e)
	}
}

func TestParseFailureReportsUnexpectedSymbol(t *testing.T) {
	// An axiom matching only the empty string never fails a token
	// attempt, so leftover input reports UnexpectedSymbol rather than
	// ExpectedSymbols (which wins whenever any token attempt failed).
	var tb symbol.Table
	empty := tb.Construct("Empty")
	b := grammar.NewBuilder()
	b.AddRule(empty)
	g, e := b.BuildAxiom("Empty")
	if e != nil {
		t.Fatalf("Build: %v", e)
	}

	p, e := New(g)
	if e != nil {
		t.Fatalf("New: %v", e)
	}

	_, e = p.Parse("x")
	if e == nil {
		t.Fatal("expected an error for trailing unparsed input")
	}
	if _, ok := e.(*UnexpectedSymbolError); !ok {
		t.Errorf("got %T, want *UnexpectedSymbolError", e)
	}
}

// ambiguousPrefixGrammar builds a construct with two rule alternatives
// sharing a prefix, to exercise rule-order alternative selection:
// Value -> num dot num | num.
func ambiguousPrefixGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	var tb symbol.Table
	value := tb.Construct("Value")
	num, _ := tb.Token("num", `\d+`)
	dot, _ := tb.Token("", `\.`)

	b := grammar.NewBuilder()
	b.AddRule(value, num, dot, num)
	b.AddRule(value, num)

	g, e := b.BuildAxiom("Value")
	if e != nil {
		t.Fatalf("Build: %v", e)
	}
	return g
}

func TestParseTriesLongerRuleFirst(t *testing.T) {
	g := ambiguousPrefixGrammar(t)
	p, e := New(g)
	if e != nil {
		t.Fatalf("New: %v", e)
	}

	tree, e := p.Parse("3.14")
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}
	if len(tree.Children()) != 3 {
		t.Errorf("Parse(\"3.14\") matched a %d-symbol rule, want the 3-symbol alternative", len(tree.Children()))
	}

	tree2, e := p.Parse("42")
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}
	if len(tree2.Children()) != 1 {
		t.Errorf("Parse(\"42\") matched a %d-symbol rule, want the 1-symbol alternative", len(tree2.Children()))
	}
}

func TestParseFromNonAxiomConstruct(t *testing.T) {
	g := digitListGrammar(t)
	p, e := New(g)
	if e != nil {
		t.Fatalf("New: %v", e)
	}

	rest := g.ConstructsByName["Rest"]
	tree, e := p.ParseFrom("4 5", rest)
	if e != nil {
		t.Fatalf("ParseFrom: %v", e)
	}
	if tree.Name() != "Rest" {
		t.Errorf("ParseFrom returned a %q node, want Rest", tree.Name())
	}
}
