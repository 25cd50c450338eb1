package domain

// ResultKind discriminates what the host should do with a file.
type ResultKind uint8

const (
	// ResultNoAction means the file is left untouched.
	ResultNoAction ResultKind = iota
	// ResultReplace means the file content should be replaced with Result.Text.
	ResultReplace
	// ResultFailure means the file could not be processed; Result.Err holds the reason.
	ResultFailure
)

// String returns a short name for the kind.
func (k ResultKind) String() string {
	switch k {
	case ResultNoAction:
		return "no-action"
	case ResultReplace:
		return "replace"
	case ResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the answer of the pipeline for a single file.
type Result struct {
	Kind ResultKind
	Text string
	Err  error
	// Cached is true when the answer came from the result cache.
	Cached bool
}

// NoAction returns a Result that leaves the file untouched.
func NoAction() Result {
	return Result{Kind: ResultNoAction}
}

// Replace returns a Result that replaces the file content with text.
func Replace(text string) Result {
	return Result{Kind: ResultReplace, Text: text}
}

// Failure returns a Result carrying err.
func Failure(err error) Result {
	return Result{Kind: ResultFailure, Err: err}
}

// ResultFromOutcome converts a cached outcome into the matching Result.
func ResultFromOutcome(o Outcome) Result {
	if o.Kind == OutcomeTransformed {
		return Replace(o.Text)
	}
	return NoAction()
}
