package links

import "errors"

var (
	// ErrNotFound is returned when a link does not exist, or when it is
	// logically expired even if the sweeper has not removed the row yet.
	ErrNotFound = errors.New("link not found")

	// ErrCodeTaken is returned by the store when an insert hits the
	// short_code unique constraint.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrCodeExhausted is returned when every create attempt collided.
	// The condition is transient; the client can simply retry.
	ErrCodeExhausted = errors.New("failed to generate a unique short code")
)

// ValidationError represents a validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
