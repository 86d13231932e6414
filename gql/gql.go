// Package gql implements the small textual grammar-source language from
// spec section 6: a line-oriented front-end that is itself external to
// the core (the core only guarantees that whatever it builds is
// representable through grammar.Builder). It exists so a Grammar can be
// round-tripped to text and back (spec section 8 property 5) and so
// example programs can keep their grammars in a readable file instead
// of Go source.
//
// Grammar:
//
//	ignore:<regex>/          declares an ignored pattern
//	HEAD -> s1 s2 ...        or HEAD = s1 s2 ..., one rule per line
//	/                        as the entire body denotes an epsilon rule
//	name:<regex>/            a token body symbol (name may be empty)
//	bare-word                a construct reference
//	// ...                   line comment
//	/* ... */                block comment (may span lines)
package gql

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ava12/quickparse/grammar"
	"github.com/ava12/quickparse/symbol"
)

var (
	identRe        = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Parse compiles a textual grammar description into a grammar.Grammar,
// using its own symbol.Table so identically-spelled constructs/tokens
// intern to the same Symbol values.
func Parse(name, text string) (*grammar.Grammar, error) {
	table := &symbol.Table{}
	b := grammar.NewBuilder()

	text = blockCommentRe.ReplaceAllString(text, "")
	for lineNo, rawLine := range strings.Split(text, "\n") {
		line := stripLineComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := cutPrefix(line, "ignore:"); ok {
			pattern := strings.TrimSuffix(rest, "/")
			if e := b.IgnorePatterns(pattern); e != nil {
				return nil, lineError(name, lineNo, e)
			}
			continue
		}

		headName, bodyText, e := splitRule(line)
		if e != nil {
			return nil, lineError(name, lineNo, e)
		}

		head := table.Construct(headName)
		body, e := parseBody(table, bodyText)
		if e != nil {
			return nil, lineError(name, lineNo, e)
		}

		b.AddRule(head, body...)
	}

	return b.Build()
}

func stripLineComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}

func cutPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

func splitRule(line string) (head, body string, err error) {
	sep := "->"
	idx := strings.Index(line, sep)
	if idx < 0 {
		sep = "="
		idx = strings.Index(line, sep)
	}
	if idx < 0 {
		return "", "", fmt.Errorf("expected '->' or '=' in rule %q", line)
	}

	head = strings.TrimSpace(line[:idx])
	body = strings.TrimSpace(line[idx+len(sep):])
	if !identRe.MatchString(head) {
		return "", "", fmt.Errorf("invalid construct name %q", head)
	}
	return head, body, nil
}

func parseBody(table *symbol.Table, bodyText string) ([]symbol.Symbol, error) {
	if bodyText == "/" || bodyText == "" {
		return nil, nil
	}

	fields := strings.Fields(bodyText)
	body := make([]symbol.Symbol, 0, len(fields))
	for _, f := range fields {
		sym, e := parseBodySymbol(table, f)
		if e != nil {
			return nil, e
		}
		body = append(body, sym)
	}
	return body, nil
}

func parseBodySymbol(table *symbol.Table, field string) (symbol.Symbol, error) {
	if idx := strings.Index(field, ":"); idx >= 0 {
		name := field[:idx]
		pattern := strings.TrimSuffix(field[idx+1:], "/")
		if name != "" && !identRe.MatchString(name) {
			return nil, fmt.Errorf("invalid token name %q", name)
		}
		tok, e := table.Token(name, pattern)
		if e != nil {
			return nil, fmt.Errorf("invalid token pattern %q: %w", pattern, e)
		}
		return tok, nil
	}

	if !identRe.MatchString(field) {
		return nil, fmt.Errorf("invalid construct reference %q", field)
	}
	return table.Construct(field), nil
}

func lineError(name string, lineNo int, cause error) error {
	return fmt.Errorf("%s:%d: %w", name, lineNo+1, cause)
}
