// Copyright © 2026 The escope authors

// Package diagnostic provides Rust-style annotated error rendering for
// escope CLI output. It is intentionally independent of the ast/ and
// lint/ packages so that any command can use it without creating import
// cycles.
package diagnostic

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a region of source code to highlight in the
// diagnostic. Positions are 1-based. A span built from an ESTree loc
// block may cover several lines; EndLine is 0 for the common
// single-line case.
type Span struct {
	File    string // path for reading source; display name if unreadable
	Line    int    // start line
	Col     int    // start column
	EndLine int    // end line (0 = same as Line)
	EndCol  int    // end column (0 = auto-detect from source)
	Label   string // text shown under the underline
}

// Diagnostic represents a single error, warning, or note with optional
// source annotations and trailing notes.
type Diagnostic struct {
	Severity Severity
	Message  string
	Spans    []Span
	Notes    []string // "= note:" lines
}
