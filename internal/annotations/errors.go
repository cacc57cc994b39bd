package annotations

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed annotation line
type ParseError struct {
	Message    string
	Location   SourceLocation
	Suggestion string
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s:%d:%d: %s. %s",
			e.Location.File, e.Location.Line, e.Location.Column,
			e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s:%d:%d: %s",
		e.Location.File, e.Location.Line, e.Location.Column, e.Message)
}

// ValidationError reports a single parameter failing schema validation
type ValidationError struct {
	Parameter string
	Expected  string
	Actual    string
	Loc       SourceLocation
	Hint      string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s:%d: parameter %q: expected %s, got %s",
		e.Loc.File, e.Loc.Line, e.Parameter, e.Expected, e.Actual)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

// SchemaError reports an annotation-level schema violation
type SchemaError struct {
	Msg  string
	Loc  SourceLocation
	Hint string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Loc.File, e.Loc.Line, e.Msg)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	return msg
}

// MultipleValidationErrors aggregates every validation failure of one annotation
type MultipleValidationErrors struct {
	Errors []error
}

func (e *MultipleValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  - %s", err.Error())
	}
	return sb.String()
}

// Unwrap exposes the aggregated errors to errors.Is/As
func (e *MultipleValidationErrors) Unwrap() []error {
	return e.Errors
}
