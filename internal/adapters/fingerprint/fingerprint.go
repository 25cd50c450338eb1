// Package fingerprint computes content digests for cache validation.
package fingerprint

import (
	_ "crypto/sha256" // registers the canonical algorithm with go-digest

	"github.com/opencontainers/go-digest"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter implements ports.Fingerprinter with SHA-256.
type Fingerprinter struct {
	algorithm digest.Algorithm
}

// New creates a Fingerprinter using the canonical digest algorithm (SHA-256).
func New() *Fingerprinter {
	return &Fingerprinter{algorithm: digest.Canonical}
}

// Fingerprint returns the digest of content in "sha256:<hex>" form.
func (f *Fingerprinter) Fingerprint(content []byte) domain.Digest {
	return domain.Digest(f.algorithm.FromBytes(content).String())
}

// FingerprintString is a convenience wrapper for text content.
func (f *Fingerprinter) FingerprintString(content string) domain.Digest {
	return domain.Digest(f.algorithm.FromString(content).String())
}
