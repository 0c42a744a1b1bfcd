package domain

import "errors"

// Error kinds surfaced by the service layer. The HTTP layer maps each kind to
// a distinct status code, so callers can tell "not allowed" from "not found"
// from "bad input". Wrap with fmt.Errorf("%w: ...") to add detail.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrPersistence     = errors.New("persistence failure")
)
