package gql

import (
	"testing"

	"github.com/ava12/quickparse/parser"
)

const simpleGrammar = `
// a tiny sum grammar for round-trip and parse checks
ignore:\s+/

Sum -> num:[0-9]+/ Tail
Tail -> addop:[+-]/ num:[0-9]+/ Tail
Tail -> /
`

func TestParseBuildsUsableGrammar(t *testing.T) {
	g, e := Parse("simple", simpleGrammar)
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}

	p, e := parser.New(g)
	if e != nil {
		t.Fatalf("parser.New: %v", e)
	}

	tree, e := p.Parse("1 + 2 - 3")
	if e != nil {
		t.Fatalf("Parse(source): %v", e)
	}
	if tree.Name() != "Sum" {
		t.Errorf("tree.Name() = %q, want Sum", tree.Name())
	}
}

func TestRoundTrip(t *testing.T) {
	g, e := Parse("simple", simpleGrammar)
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}

	rendered := String(g)
	g2, e := Parse("simple-roundtrip", rendered)
	if e != nil {
		t.Fatalf("Parse(String(g)): %v\nrendered:\n%s", e, rendered)
	}

	p2, e := parser.New(g2)
	if e != nil {
		t.Fatalf("parser.New(g2): %v", e)
	}
	if _, e := p2.Parse("1+2+3"); e != nil {
		t.Errorf("round-tripped grammar rejected a string the original accepted: %v", e)
	}
}

// axiomNotFirstGrammar is a CSV-like grammar whose construct names
// (Field, Fields, File, Rest, Row) are chosen because "File" does not
// sort first alphabetically among them ("Field" does), the case that
// exposed String dropping the axiom on round-trip.
const axiomNotFirstGrammar = `
File -> Row Rest
Rest -> :\n/ Row Rest
Rest -> /
Row -> Field Fields
Fields -> :;/ Field Fields
Fields -> /
Field -> plain:[^;\n]*/
`

func TestRoundTripPreservesAxiomWhenNotAlphabeticallyFirst(t *testing.T) {
	g, e := Parse("csv-like", axiomNotFirstGrammar)
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}
	if g.Axiom.Name() != "File" {
		t.Fatalf("g.Axiom = %q, want File", g.Axiom.Name())
	}

	rendered := String(g)
	g2, e := Parse("csv-like-roundtrip", rendered)
	if e != nil {
		t.Fatalf("Parse(String(g)): %v\nrendered:\n%s", e, rendered)
	}
	if g2.Axiom.Name() != "File" {
		t.Errorf("round-tripped Axiom = %q, want File (rendered:\n%s)", g2.Axiom.Name(), rendered)
	}

	p2, e := parser.New(g2)
	if e != nil {
		t.Fatalf("parser.New(g2): %v", e)
	}
	if _, e := p2.Parse("a;b\nc"); e != nil {
		t.Errorf("round-tripped grammar rejected a string the original accepted: %v", e)
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, e := Parse("bad", "this is not a rule")
	if e == nil {
		t.Fatal("expected an error for a line with no '->' or '='")
	}
}

func TestParseAllowsEqualsSeparator(t *testing.T) {
	g, e := Parse("eq", "A = b:x/")
	if e != nil {
		t.Fatalf("Parse: %v", e)
	}
	if g.Axiom.Name() != "A" {
		t.Errorf("Axiom = %q, want A", g.Axiom.Name())
	}
}
