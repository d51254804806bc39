package errors

import "errors"

// Sentinel errors for the application. Services return these (wrapped with
// detail) and the API layer maps them to HTTP status codes with errors.Is,
// keeping business logic free of transport concerns.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with current state,
	// e.g. a second stream submitted while a turn is already active on the
	// same session. Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies the caller does not own the resource.
	// Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrUnavailable signifies the language-model backend is unreachable or
	// misconfigured. Mapped to 503 Service Unavailable.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrInternal is the generic server-side failure. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
