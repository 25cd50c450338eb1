package domain

// Digest is a content fingerprint in canonical "algorithm:hex" form.
// Two digests are equal only if they were computed over identical bytes.
type Digest string

// String returns the canonical string form of the digest.
func (d Digest) String() string {
	return string(d)
}

// IsZero reports whether the digest is empty.
func (d Digest) IsZero() bool {
	return d == ""
}
