package ports

import "go.trai.ch/deco/internal/core/domain"

// Fingerprinter computes content digests used to validate cached results.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the digest of content. It is pure and never fails.
	Fingerprint(content []byte) domain.Digest
}
