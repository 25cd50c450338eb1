package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured key/value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per chain level. Joined errors
// contribute their branches in order. Levels without a message only carry metadata,
// which is merged into the next level.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	add := func(e ErrorEntry) {
		if len(pending) > 0 {
			if e.Metadata == nil {
				e.Metadata = make(map[string]any, len(pending))
			}
			for k, v := range pending {
				if _, exists := e.Metadata[k]; !exists {
					e.Metadata[k] = v
				}
			}
			pending = nil
		}
		entries = append(entries, e)
	}

	current := err
	for current != nil {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, branch := range joined.Unwrap() {
				for _, e := range collectErrorEntries(branch) {
					add(e)
				}
			}
			break
		}

		m, ok := current.(messager)
		if !ok {
			// Standard error: its Error() already contains the rest of the chain.
			add(ErrorEntry{Message: current.Error()})
			break
		}

		var metadata map[string]any
		if md, ok := current.(metadataer); ok {
			metadata = md.Metadata()
		}

		if m.Message() == "" {
			if pending == nil {
				pending = make(map[string]any, len(metadata))
			}
			maps.Copy(pending, metadata)
		} else {
			add(ErrorEntry{Message: m.Message(), Metadata: metadata})
		}

		current = errors.Unwrap(current)
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = make(map[string]any, len(pending))
		}
		maps.Copy(last.Metadata, pending)
	}

	return entries
}

// formatErrorEntries renders entries as the main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var head, indent string
		if i == 0 {
			head, indent = "Error: ", "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
