package restock

import "fmt"

// FormatError reports a persisted document whose structure cannot be
// trusted: strict schema validation failed, or the file is not readable JSON
// at all. It is fatal at startup: the store must not proceed with a partially
// trusted document, the operator has to move the file away.
type FormatError struct {
	Path string // backing file that failed validation
	Err  error  // underlying schema or syntax error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("configuration file %q has an invalid format: %v. Delete it or move it elsewhere so a new one can be created", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FieldError reports a single numeric field (day estimate, override,
// coefficient, inventory) that failed to parse. It blocks only the operation
// that needed the field and is reported through the message channel.
type FieldError struct {
	Field string // user-facing name of the offending field, e.g. "Monday" or "Override"
	Value string // the rejected textual value
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid number for %s: %q", e.Field, e.Value)
}

// MissingInputError reports an add-item request without one of its required
// fields. The add is cancelled, no partial item is created.
type MissingInputError struct {
	Field string // "name" or "unit"
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required item %s, no item added", e.Field)
}
