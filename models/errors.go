package models

import "fmt"

// ValidationError is returned when a wizard step guard rejects the draft.
// It always stays local: the wizard keeps its current step and the draft
// is left untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthRequiredError is returned when generation or persistence is attempted
// without a signed-in identity.
type AuthRequiredError struct{}

func (e *AuthRequiredError) Error() string { return "Sign in to generate a trip." }

// GenerationError wraps any failure of the itinerary/chat generation call:
// network, rate limiting, or an unparseable result. Never retried
// automatically.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed store read/write. In-memory state is kept
// so no user data is lost on failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("trip store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotFoundError marks a missing place/trip/transit id. Rendered as a
// not-found response, never a crash.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Kind, e.ID) }
