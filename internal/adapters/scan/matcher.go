// Package scan detects decorators in TypeScript source without parsing it.
package scan

import "regexp"

// decoratorPattern matches a decorator marker: "@", an identifier, optional member or
// index access, then an invocation paren or a separator. A statement terminator
// right after the marker is not in the final class, so "@x;" never matches.
var decoratorPattern = regexp.MustCompile(`@\w[.\[\]\w]*\s*[(?=)\s]`)

// Matcher runs the decorator pattern over text whose comments and strings are already neutralized.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{pattern: decoratorPattern}
}

// Match reports whether sanitized contains at least one decorator.
func (m *Matcher) Match(sanitized string) bool {
	for offset := 0; offset < len(sanitized); {
		loc := m.pattern.FindStringIndex(sanitized[offset:])
		if loc == nil {
			return false
		}

		at := offset + loc[0]
		if !quotedArgument(sanitized, at) {
			return true
		}
		offset = at + 1
	}
	return false
}

// quotedArgument reports whether the marker at index at directly follows a quote
// that itself follows "(" or whitespace, as in foo('@x') or [ "@y" ].
func quotedArgument(text string, at int) bool {
	if at < 2 {
		return false
	}
	q := text[at-1]
	if q != '\'' && q != '"' {
		return false
	}
	prev := text[at-2]
	return prev == '(' || isSpace(prev)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
