package domain

import "unique"

// FileID identifies a source file by its path.
// It wraps a unique.Handle[string] so that repeated lookups of the same path compare cheaply
// and the path string is stored once per process.
type FileID struct {
	h unique.Handle[string]
}

// NewFileID creates a new FileID from a path.
func NewFileID(path string) FileID {
	return FileID{
		h: unique.Make(path),
	}
}

// String returns the underlying path.
func (id FileID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (id FileID) Value() unique.Handle[string] {
	return id.h
}

// IsZero reports whether the FileID was never initialized.
func (id FileID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id FileID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FileID) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}
