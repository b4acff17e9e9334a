package diag

import (
	"prism/internal/source"
)

// Note attaches a secondary span with context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding: where, how bad, and what happened.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
