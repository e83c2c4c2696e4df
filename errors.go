package telemetry

import "fmt"

// MissingFieldError is returned by a builder's Build when a required field
// was never set, or when a required string field was left empty. It is not
// retriable: the caller has to supply the field and build again.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

func missingField(entity, field string) error {
	return &MissingFieldError{Entity: entity, Field: field}
}

// EncodingError is returned when a value that never went through a validating
// builder reaches the encoder. It signals a programming defect in the caller
// rather than bad input data, and is surfaced instead of emitting an
// incomplete record.
type EncodingError struct {
	Entity string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: refusing to encode a value that was not produced by a builder", e.Entity)
}
