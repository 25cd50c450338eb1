package domain

import "strings"

// FileStatus represents where a file is in its pass through the pipeline.
type FileStatus string

const (
	// FileStatusPending indicates the file is waiting to be processed.
	FileStatusPending FileStatus = "pending"
	// FileStatusRunning indicates the file is being processed.
	FileStatusRunning FileStatus = "running"
	// FileStatusUnchanged indicates no transformation was needed.
	FileStatusUnchanged FileStatus = "unchanged"
	// FileStatusReplaced indicates the file content was transformed.
	FileStatusReplaced FileStatus = "replaced"
	// FileStatusCached indicates the decision was served from the result cache.
	FileStatusCached FileStatus = "cached"
	// FileStatusFailed indicates reading or transforming the file failed.
	FileStatusFailed FileStatus = "failed"
	// FileStatusSkipped indicates the file was never scanned because the precondition did not hold.
	FileStatusSkipped FileStatus = "skipped"
)

// StatusFromResult maps a pipeline result to the status reported for the file.
func StatusFromResult(r Result) FileStatus {
	switch {
	case r.Kind == ResultFailure:
		return FileStatusFailed
	case r.Cached:
		return FileStatusCached
	case r.Kind == ResultReplace:
		return FileStatusReplaced
	default:
		return FileStatusUnchanged
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// IsTerminal checks if a status is final for the current pass.
func (s FileStatus) IsTerminal() bool {
	switch s {
	case FileStatusUnchanged, FileStatusReplaced, FileStatusCached, FileStatusFailed, FileStatusSkipped:
		return true
	default:
		return false
	}
}

// NormalizeFileStatus converts a string to a FileStatus, defaulting to pending if unknown.
func NormalizeFileStatus(s string) FileStatus {
	switch FileStatus(strings.ToLower(s)) {
	case FileStatusRunning:
		return FileStatusRunning
	case FileStatusUnchanged:
		return FileStatusUnchanged
	case FileStatusReplaced:
		return FileStatusReplaced
	case FileStatusCached:
		return FileStatusCached
	case FileStatusFailed:
		return FileStatusFailed
	case FileStatusSkipped:
		return FileStatusSkipped
	default:
		return FileStatusPending
	}
}
