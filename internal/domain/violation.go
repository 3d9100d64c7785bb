package domain

import "fmt"

// Violation reasons. Every violation carries exactly one.
const (
	ReasonMissingRequired = "missing required key"
	ReasonTypeMismatch    = "type mismatch"
	ReasonInvalidEnum     = "invalid enum value"
	ReasonListTooShort    = "list too short"
	ReasonUnknownKey      = "unknown key"
)

// Violation records a single deviation of a document from its schema,
// attached to a dot-separated key path (list elements are indexed, e.g.
// "input_file_paths[2]").
type Violation struct {
	Path     string   `json:"path"`
	Reason   string   `json:"reason"`
	Expected string   `json:"expected,omitempty"`
	Actual   string   `json:"actual,omitempty"`
	Allowed  []string `json:"allowed,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

func (v Violation) String() string {
	s := v.Path + ": " + v.Reason
	if v.Expected != "" {
		s += fmt.Sprintf(" (expected %s, got %s)", v.Expected, v.Actual)
	}
	if len(v.Allowed) > 0 {
		s += fmt.Sprintf(" (allowed %v, got %s)", v.Allowed, v.Actual)
	}
	if v.Hint != "" {
		s += " (" + v.Hint + ")"
	}
	return s
}

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Report is the outcome of validating one run-configuration document.
// Violations preserve schema traversal order, so repeated validation of
// the same document yields an identical report.
type Report struct {
	Status     string      `json:"status"`
	ConfigFile string      `json:"config_file,omitempty"`
	Schema     string      `json:"schema,omitempty"`
	CommitHash string      `json:"commit_hash,omitempty"`
	Violations []Violation `json:"violations"`
}

// Valid reports whether the document satisfied the schema.
func (r Report) Valid() bool { return len(r.Violations) == 0 }

// ParseError signals that the source bytes could not be interpreted as a
// structured document at all. It is the only fatal failure mode; schema
// deviations are accumulated as Violations instead.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
