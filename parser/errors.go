package parser

import (
	"strconv"

	qerr "github.com/ava12/quickparse/errors"
	"github.com/ava12/quickparse/symbol"
)

// LeftRecursionError reports a cycle in the head -> first-body-symbol
// graph, discovered at parser construction time, before any parse runs.
type LeftRecursionError struct {
	Err         *qerr.Error
	Head, First *symbol.Construct
}

func (e *LeftRecursionError) Error() string { return e.Err.Error() }

func (e *LeftRecursionError) Unwrap() error { return e.Err }

func leftRecursionError(head, first *symbol.Construct) *LeftRecursionError {
	return &LeftRecursionError{
		Err: qerr.New(qerr.LeftRecursion,
			"left recursion: construct %q reaches itself via %q", head.Name(), first.Name()),
		Head:  head,
		First: first,
	}
}

// ExpectedSymbolsError reports that parsing failed at Position with a
// known, non-empty set of tokens that would have been accepted there.
type ExpectedSymbolsError struct {
	Err      *qerr.Error
	Source   string
	Position int
	Expected []*symbol.Token
}

func (e *ExpectedSymbolsError) Error() string { return e.Err.Error() }

func (e *ExpectedSymbolsError) Unwrap() error { return e.Err }

func expectedSymbolsError(source string, position int, expected []*symbol.Token) *ExpectedSymbolsError {
	return &ExpectedSymbolsError{
		Err:      qerr.New(qerr.ExpectedSymbols, "%s", describeExpected(source, position, expected)),
		Source:   source,
		Position: position,
		Expected: expected,
	}
}

// UnexpectedSymbolError reports a parse that matched the axiom but left
// trailing, unconsumed content at Position.
type UnexpectedSymbolError struct {
	Err      *qerr.Error
	Source   string
	Position int
}

func (e *UnexpectedSymbolError) Error() string { return e.Err.Error() }

func (e *UnexpectedSymbolError) Unwrap() error { return e.Err }

func unexpectedSymbolError(source string, position int) *UnexpectedSymbolError {
	return &UnexpectedSymbolError{
		Err:      qerr.New(qerr.UnexpectedSymbol, "%s", describeUnexpected(source, position)),
		Source:   source,
		Position: position,
	}
}

func describeExpected(source string, position int, expected []*symbol.Token) string {
	names := make([]string, 0, len(expected))
	for _, t := range expected {
		if t.Anonymous() {
			names = append(names, t.PatternSource())
		} else {
			names = append(names, t.Name())
		}
	}
	return "expected " + joinOr(names) + " at " + positionDesc(source, position)
}

func describeUnexpected(source string, position int) string {
	return "unexpected " + charDesc(source, position) + " at " + positionDesc(source, position)
}

func positionDesc(source string, position int) string {
	if position >= len(source) {
		return "end of source"
	}
	return "position " + strconv.Itoa(position)
}

func charDesc(source string, position int) string {
	if position >= len(source) {
		return qerr.DescribeChar(0, true)
	}
	return qerr.DescribeChar(rune(source[position]), false)
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	}
	s := names[0]
	for _, n := range names[1 : len(names)-1] {
		s += ", " + n
	}
	return s + " or " + names[len(names)-1]
}
