package orchestrator

import "errors"

// Sentinel errors for the orchestration boundary. Handlers map these to
// HTTP statuses with errors.Is; anything else is an internal failure and
// surfaces as a generic 500.
var (
	// ErrValidation marks malformed, missing, or empty request fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID marks a malformed article UUID.
	ErrInvalidID = errors.New("invalid article ID format")

	// ErrNotFound marks a referenced article that does not exist.
	ErrNotFound = errors.New("article not found")

	// ErrStorage marks a transaction or connection failure. Whatever was in
	// flight has been rolled back.
	ErrStorage = errors.New("database error")
)

func isTaggedError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrStorage)
}
