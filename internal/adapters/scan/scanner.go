package scan

import "go.trai.ch/deco/internal/core/ports"

var _ ports.ConstructScanner = (*Scanner)(nil)

// Scanner implements ports.ConstructScanner as two stages: strip, then match.
type Scanner struct {
	stripper ports.Stripper
	matcher  *Matcher
}

// NewScanner creates a Scanner that sanitizes input with stripper before matching.
func NewScanner(stripper ports.Stripper) *Scanner {
	return &Scanner{
		stripper: stripper,
		matcher:  NewMatcher(),
	}
}

// HasConstruct reports whether content contains a decorator outside comments and strings.
func (s *Scanner) HasConstruct(content string) bool {
	return s.matcher.Match(s.stripper.Strip(content))
}
