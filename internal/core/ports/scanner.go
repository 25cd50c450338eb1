package ports

//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks

// Stripper neutralizes comment and string-literal regions of source text.
type Stripper interface {
	// Strip returns content with comment and string bodies replaced by filler
	// of the same line and column shape.
	Strip(content string) string
}

// ConstructScanner decides whether source text contains at least one decorator.
type ConstructScanner interface {
	// HasConstruct reports whether content contains a decorator outside comments and strings.
	HasConstruct(content string) bool
}
