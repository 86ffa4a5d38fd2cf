package domain

import "fmt"

// StructuralError means the input is unreadable as tabular data (no header
// row, zero columns, required source columns absent). Fatal to the whole
// batch; nothing is written.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.Reason)
}

// MissingFieldError means one record is missing a required field. Row-local:
// the record is skipped and the batch continues.
type MissingFieldError struct {
	Identifier string
	Column     string
}

func (e *MissingFieldError) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("required field %q is empty", e.Column)
	}
	return fmt.Sprintf("record %s: required field %q is empty", e.Identifier, e.Column)
}

// CompositionError is reserved for description-assembly failures. Composition
// is total over string inputs, so none occur under normal operation; the type
// exists so callers can classify the full taxonomy.
type CompositionError struct {
	Identifier string
	Reason     string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("record %s: composing description: %s", e.Identifier, e.Reason)
}
