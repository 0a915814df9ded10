package errors

import "errors"

// Common error types for the hostel client
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrWrongActorKind     = errors.New("operation not available for this actor kind")

	// Transport errors
	ErrCsrfUnavailable = errors.New("csrf token unavailable")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")

	// General errors
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
)
