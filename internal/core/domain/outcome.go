package domain

// OutcomeKind discriminates the two variants of Outcome.
type OutcomeKind uint8

const (
	// OutcomeUnneeded means the content requires no transformation.
	OutcomeUnneeded OutcomeKind = iota
	// OutcomeTransformed means the content was transformed and Text holds the replacement.
	OutcomeTransformed
)

// String returns a short name for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUnneeded:
		return "unneeded"
	case OutcomeTransformed:
		return "transformed"
	default:
		return "unknown"
	}
}

// Outcome is the cached decision for one version of a file.
// An empty Text with Kind OutcomeTransformed is a valid, distinct replacement.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

// Unneeded returns the outcome for content that needs no transformation.
func Unneeded() Outcome {
	return Outcome{Kind: OutcomeUnneeded}
}

// Transformed returns the outcome for content that was replaced by text.
func Transformed(text string) Outcome {
	return Outcome{Kind: OutcomeTransformed, Text: text}
}

// CacheRecord pairs an outcome with the digest of the content that produced it.
type CacheRecord struct {
	Digest  Digest
	Outcome Outcome
}

// recordOverhead approximates the bookkeeping bytes of one cached record
// (map slot, list element, struct headers).
const recordOverhead = 64

// RecordSize returns the number of bytes a record for id is charged against the cache budget.
func RecordSize(id FileID, record CacheRecord) int64 {
	return int64(len(id.String()) + len(record.Digest) + len(record.Outcome.Text) + recordOverhead)
}
