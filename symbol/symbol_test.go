package symbol

import "testing"

func TestTableInternsConstructs(t *testing.T) {
	var tb Table

	a1 := tb.Construct("A")
	a2 := tb.Construct("A")
	b := tb.Construct("B")

	if a1 != a2 {
		t.Error("Construct(\"A\") called twice returned distinct values")
	}
	if a1 == b {
		t.Error("Construct(\"A\") and Construct(\"B\") returned the same value")
	}
}

func TestTableInternsTokens(t *testing.T) {
	var tb Table

	t1, e := tb.Token("num", `\d+`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}
	t2, e := tb.Token("num", `\d+`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}
	if t1 != t2 {
		t.Error("Token with identical (name, pattern) called twice returned distinct values")
	}

	t3, e := tb.Token("num", `[0-9]+`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}
	if t1 == t3 {
		t.Error("Token with the same name but a different pattern returned the same value")
	}
}

func TestTableAnonymousTokensInternByPattern(t *testing.T) {
	var tb Table

	a1, e := tb.Token("", `\(`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}
	a2, e := tb.Token("", `\(`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}
	a3, e := tb.Token("", `\)`)
	if e != nil {
		t.Fatalf("Token: %v", e)
	}

	if a1 != a2 {
		t.Error("two anonymous tokens with the same pattern did not intern to the same value")
	}
	if a1 == a3 {
		t.Error("two anonymous tokens with different patterns interned to the same value")
	}
	if !a1.Anonymous() || !a3.Anonymous() {
		t.Error("Anonymous() false for an empty-named token")
	}
}

func TestTableTokenBadPattern(t *testing.T) {
	var tb Table
	if _, e := tb.Token("bad", `(`); e == nil {
		t.Error("expected an error compiling an invalid regexp")
	}
}

func TestEqual(t *testing.T) {
	var tb1, tb2 Table

	c1 := tb1.Construct("Expr")
	c2 := tb2.Construct("Expr")
	if !Equal(c1, c2) {
		t.Error("Equal: constructs with the same name from distinct tables should compare equal")
	}

	tok1, _ := tb1.Token("num", `\d+`)
	tok2, _ := tb2.Token("num", `\d+`)
	if !Equal(tok1, tok2) {
		t.Error("Equal: tokens with the same (name, pattern) from distinct tables should compare equal")
	}

	if Equal(c1, tok1) {
		t.Error("Equal: a Construct and a Token should never compare equal")
	}
}

func TestConstructEmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Construct(\"\") to panic")
		}
	}()
	var tb Table
	tb.Construct("")
}
