// Package strip neutralizes comments and string literals in JavaScript and TypeScript source.
//
// Neutralized regions are overwritten with spaces byte for byte. Line breaks are kept,
// so the output has the same length and the same line and column layout as the input.
// String delimiters are kept; only their bodies are blanked. Regular expression
// literals are treated like strings. A slash starts one when the preceding token
// cannot end an expression, which is a heuristic: "a++ / b" reads as a regex
// that ends at the next slash or line break.
package strip

import (
	"strings"

	"go.trai.ch/deco/internal/core/ports"
)

var _ ports.Stripper = (*Stripper)(nil)

// Stripper implements ports.Stripper.
type Stripper struct {
	keepStrings bool
}

// Option configures a Stripper.
type Option func(*Stripper)

// WithStrings keeps string literal bodies intact and only removes comments.
// This is what JSONC files such as tsconfig.json need.
func WithStrings() Option {
	return func(s *Stripper) {
		s.keepStrings = true
	}
}

// New creates a new Stripper.
func New(opts ...Option) *Stripper {
	s := &Stripper{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type state uint8

const (
	stateCode state = iota
	stateLineComment
	stateBlockComment
	stateString
	stateTemplate
	stateRegex
)

// regexPrefixes are the bytes after which a slash starts a regular expression.
// "<" is left out so that JSX closing tags stay code.
const regexPrefixes = "(,=:[!&|?{};+-*%>~^"

// regexKeywords are the keywords after which a slash starts a regular expression.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "new": true, "delete": true, "void": true,
	"throw": true, "instanceof": true, "yield": true, "await": true,
}

// Strip returns content with comment and string bodies replaced by spaces.
func (s *Stripper) Strip(content string) string {
	out := []byte(content)
	st := stateCode
	var quote byte
	var inClass bool

	for i := 0; i < len(out); i++ {
		c := out[i]

		switch st {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				st = stateLineComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				st = stateBlockComment
				out[i], out[i+1] = ' ', ' '
				i++
			case c == '/' && startsRegex(out, i):
				st = stateRegex
				inClass = false
			case c == '\'' || c == '"':
				st = stateString
				quote = c
			case c == '`':
				st = stateTemplate
			}

		case stateLineComment:
			if c == '\n' || c == '\r' {
				st = stateCode
				continue
			}
			out[i] = ' '

		case stateBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				st = stateCode
				continue
			}
			blank(out, i)

		case stateString:
			switch c {
			case quote:
				st = stateCode
			case '\n', '\r':
				// Unterminated literal; the line break ends it.
				st = stateCode
			case '\\':
				s.blankLiteral(out, i)
				if i+1 < len(out) {
					i++
					s.blankLiteral(out, i)
				}
			default:
				s.blankLiteral(out, i)
			}

		case stateTemplate:
			switch c {
			case '`':
				st = stateCode
			case '\\':
				s.blankLiteral(out, i)
				if i+1 < len(out) {
					i++
					s.blankLiteral(out, i)
				}
			default:
				s.blankLiteral(out, i)
			}

		case stateRegex:
			switch {
			case c == '\n' || c == '\r':
				// Not a regex after all; the line break ends it.
				st = stateCode
			case c == '\\':
				s.blankLiteral(out, i)
				if i+1 < len(out) && out[i+1] != '\n' && out[i+1] != '\r' {
					i++
					s.blankLiteral(out, i)
				}
			case c == '/' && !inClass:
				st = stateCode
			default:
				switch c {
				case '[':
					inClass = true
				case ']':
					inClass = false
				}
				s.blankLiteral(out, i)
			}
		}
	}

	return string(out)
}

// startsRegex reports whether the slash at out[i] opens a regular expression literal,
// judging by the last significant byte before it.
func startsRegex(out []byte, i int) bool {
	j := i - 1
	for j >= 0 && (out[j] == ' ' || out[j] == '\t' || out[j] == '\n' || out[j] == '\r') {
		j--
	}
	if j < 0 {
		return true
	}
	if strings.IndexByte(regexPrefixes, out[j]) >= 0 {
		return true
	}

	end := j + 1
	for j >= 0 && isIdentByte(out[j]) {
		j--
	}
	return regexKeywords[string(out[j+1:end])]
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (s *Stripper) blankLiteral(out []byte, i int) {
	if s.keepStrings {
		return
	}
	blank(out, i)
}

// blank overwrites out[i] with a space unless it is a line break.
func blank(out []byte, i int) {
	if out[i] == '\n' || out[i] == '\r' {
		return
	}
	out[i] = ' '
}
