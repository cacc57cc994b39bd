package models

import (
	"fmt"
	"strings"
)

// GeneratorError represents an error that occurred during code generation
type GeneratorError struct {
	Type        ErrorType              // type of error
	File        string                 // file where error occurred
	Line        int                    // line number where error occurred
	Message     string                 // error message
	Suggestions []string               // actionable hints shown to the user
	Context     map[string]interface{} // structured context for verbose output
	Cause       error                  // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	var sb strings.Builder
	if e.File != "" && e.Line > 0 {
		fmt.Fprintf(&sb, "%s:%d: %s", e.File, e.Line, e.Message)
	} else if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s", e.File, e.Message)
	} else {
		sb.WriteString(e.Message)
	}
	for _, suggestion := range e.Suggestions {
		fmt.Fprintf(&sb, "\n  hint: %s", suggestion)
	}
	return sb.String()
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// SourceRef points at a declaration for error reporting
type SourceRef struct {
	FileName string
	Line     int
}

// NewConflictError builds a validation error for two declarations claiming
// the same name across packages.
func NewConflictError(kind, name string, first, second SourceRef) *GeneratorError {
	return &GeneratorError{
		Type:    ErrorTypeValidation,
		File:    second.FileName,
		Line:    second.Line,
		Message: fmt.Sprintf("%s name conflict: %q is already declared at %s:%d", kind, name, first.FileName, first.Line),
		Suggestions: []string{
			fmt.Sprintf("Rename one of the conflicting %s declarations", kind),
			fmt.Sprintf("%s names must be unique across all scanned packages", kind),
		},
		Context: map[string]interface{}{
			"name":            name,
			"first_location":  fmt.Sprintf("%s:%d", first.FileName, first.Line),
			"second_location": fmt.Sprintf("%s:%d", second.FileName, second.Line),
		},
	}
}
