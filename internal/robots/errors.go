package robots

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no robot exists with the requested id.
	ErrNotFound = errors.New("robot not found")

	// ErrForbidden means the actor is authenticated but not permitted
	// to perform the action on this listing.
	ErrForbidden = errors.New("not authorized for this robot")

	// ErrConflict means a version-checked update lost a race with a
	// concurrent writer. The service retries; callers never see it.
	ErrConflict = errors.New("robot was modified concurrently")
)

// ValidationError marks a request that can never succeed unmodified,
// e.g. a non-positive price or a status outside the enumeration.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
