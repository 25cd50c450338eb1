package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/deco/internal/adapters/scan"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name      string
		sanitized string
		want      bool
	}{
		{"call decorator", "@Injectable()\nclass Foo {}", true},
		{"bare decorator before class", "@Component\nclass Foo {}", true},
		{"member access chain", "@Module.forRoot(x)", true},
		{"index access chain", "@Reflect.metadata[key](v)", true},
		{"space before paren", "@Dec ()", true},
		{"at start of file followed by end", "@Dec", false},
		{"statement terminator", "@x;", false},
		{"no marker", "class A {}", false},
		{"marker without identifier", "@ ()", false},
		{"quoted argument after paren", "foo('@Bar()')", false},
		{"quoted argument after space", `foo( "@Bar()")`, false},
		{"quote at start of file is accepted", "'@Bar()", true},
		{"quote not preceded by paren or space", "x'@Bar()", true},
		{"later marker found after rejected one", "foo('@A()') @B()", true},
		{"empty", "", false},
	}

	m := scan.NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.sanitized))
		})
	}
}
