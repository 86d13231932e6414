package synstree

import (
	"strings"
	"testing"
)

func TestWalkOrder(t *testing.T) {
	src := "1+2"
	one := NewTokenNode(src, 0, 1, "num", `\d`)
	plus := NewTokenNode(src, 1, 2, "addop", `[+]`)
	two := NewTokenNode(src, 2, 3, "num", `\d`)
	root := NewConstructNode(src, 0, 3, "Expr", nil, []Node{one, plus, two})

	var events []string
	v := &Visitor{
		EnterConstruct: func(n *ConstructNode) { events = append(events, "enter:"+n.Name()) },
		Token:          func(n *TokenNode) { events = append(events, "token:"+n.Value()) },
		ExitConstruct:  func(n *ConstructNode) { events = append(events, "exit:"+n.Name()) },
	}
	Walk(root, v)

	want := "enter:Expr,token:1,token:+,token:2,exit:Expr"
	got := strings.Join(events, ",")
	if got != want {
		t.Errorf("Walk order = %q, want %q", got, want)
	}
}

func TestNodeValueAndSpan(t *testing.T) {
	src := "hello world"
	n := NewTokenNode(src, 6, 11, "word", `\w+`)
	if n.Value() != "world" {
		t.Errorf("Value() = %q, want %q", n.Value(), "world")
	}
	if n.Start() != 6 || n.End() != 11 {
		t.Errorf("Start/End = %d/%d, want 6/11", n.Start(), n.End())
	}

	c := NewConstructNode(src, 0, 11, "Sentence", nil, []Node{n})
	if c.Value() != src {
		t.Errorf("Value() = %q, want %q", c.Value(), src)
	}
	if len(c.Children()) != 1 || c.Children()[0] != n {
		t.Error("Children() did not return the node passed to NewConstructNode")
	}
}

func TestWalkSkipsNilCallbacks(t *testing.T) {
	src := "x"
	n := NewTokenNode(src, 0, 1, "x", `x`)
	root := NewConstructNode(src, 0, 1, "Root", nil, []Node{n})

	// Must not panic with a partially-nil Visitor.
	Walk(root, &Visitor{})
}
