package domain

import "errors"

// ErrNotFound is used inside storage adapters to signal a missing row.
// It never crosses the repo boundary: lookups report absence with an ok flag.
var ErrNotFound = errors.New("not found")

// ErrValidation is the error kind for caller-correctable input problems
// (missing name, malformed phone number, blank tag).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by EntryRepo.Add when an entry with the same ID is
// already stored. IDs are generated per entry, so this indicates a bug in the
// caller and must not be retried.
var ErrConflict = errors.New("conflict")

// ValidationError carries the human-readable reason a field failed validation.
// errors.Is(err, ErrValidation) reports true for any *ValidationError.
type ValidationError struct {
	// Field names the offending input field, e.g. "first_name".
	Field string
	// Reason is the message surfaced to API clients.
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error implements error. Only the reason is returned so that clients see
// exactly the message, without field or package prefixes.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validation reasons returned by the field constructors and Entry mutators.
const (
	ReasonFirstNameRequired = "FirstName is required"
	ReasonLastNameRequired  = "LastName is required"
	ReasonPhoneInvalid      = "Phone number is invalid"
	ReasonTagRequired       = "Tag is required"
	ReasonNameRequired      = "Name is required"
	ReasonPhoneRequired     = "Phone number is required"
)
