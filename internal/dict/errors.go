package dict

import (
	"fmt"
	"strings"
)

// DuplicateFieldNameError reports an attempt to add a field whose name is
// already taken in the dictionary
type DuplicateFieldNameError struct {
	Name string
}

// Error implements the error interface
func (e *DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("field %q already exists in the dictionary", e.Name)
}

// FieldNotFoundError reports an operation against a field name the
// dictionary does not contain
type FieldNotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in the dictionary", e.Name)
}

// ConstraintPresentError reports an attempt to add a constraint kind that
// is already active on the field. Overwriting is deliberately disallowed;
// the caller must remove the existing constraint first.
type ConstraintPresentError struct {
	Field string
	Kind  ConstraintKind
}

// Error implements the error interface
func (e *ConstraintPresentError) Error() string {
	return fmt.Sprintf("field %q already has a %s constraint; remove it before adding a new one", e.Field, e.Kind)
}

// IllegalConstraintError reports a constraint kind that is not legal for
// the field's analytical type
type IllegalConstraintError struct {
	Type AnalyticalType
	Kind ConstraintKind
}

// Error implements the error interface
func (e *IllegalConstraintError) Error() string {
	return fmt.Sprintf("constraint %s is not legal for %s fields", e.Kind, e.Type)
}

// PatternError reports a regex pattern that does not compile
type PatternError struct {
	Pattern string
	Cause   error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q: %v", e.Pattern, e.Cause)
}

// Unwrap returns the underlying compile error
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// RangeError reports an invalid numeric range (min above max, or no bound
// present at all)
type RangeError struct {
	Reason string
}

// Error implements the error interface
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: %s", e.Reason)
}

// AllowedValuesError reports an allowed-values set without enough distinct
// entries to constrain anything
type AllowedValuesError struct {
	Distinct int
}

// Error implements the error interface
func (e *AllowedValuesError) Error() string {
	if e.Distinct == 0 {
		return "allowed values set is empty"
	}
	return fmt.Sprintf("allowed values require at least 2 distinct entries (found %d)", e.Distinct)
}

// FieldError ties a validation problem to the field it occurred on, so a
// caller can show it inline next to the offending entry
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (fe FieldError) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
}

// ValidationErrors aggregates per-field problems from a bulk operation
// such as import. It collects everything rather than stopping at the
// first failure.
type ValidationErrors struct {
	Problems []FieldError
}

// Add records a problem for a field
func (ve *ValidationErrors) Add(field, message string) {
	ve.Problems = append(ve.Problems, FieldError{Field: field, Message: message})
}

// AddError records an error value for a field
func (ve *ValidationErrors) AddError(field string, err error) {
	ve.Add(field, err.Error())
}

// HasErrors returns true if any problem was recorded
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Problems) > 0
}

// Count returns the number of recorded problems
func (ve *ValidationErrors) Count() int {
	return len(ve.Problems)
}

// Error implements the error interface
func (ve *ValidationErrors) Error() string {
	if !ve.HasErrors() {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.Problems))
	for _, p := range ve.Problems {
		messages = append(messages, fmt.Sprintf("  - %s: %s", p.Field, p.Message))
	}

	if len(messages) == 1 {
		return fmt.Sprintf("validation failed: %s", strings.TrimPrefix(messages[0], "  - "))
	}

	return fmt.Sprintf("validation failed:\n%s", strings.Join(messages, "\n"))
}
