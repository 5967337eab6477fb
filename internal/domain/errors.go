package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing city text, return date before departure).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a request lacks a valid authenticated
// session. Handlers should map this to HTTP 401 with no partial action taken.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientCredits is returned when a user's credit balance is zero at
// the moment of trip generation. Handlers should map this to HTTP 402.
var ErrInsufficientCredits = errors.New("insufficient credits")
