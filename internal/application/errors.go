package application

import "errors"

// Failure kinds surfaced to handlers. Handlers translate these into HTTP
// statuses; anything else is an unexpected error, logged and returned as a
// generic 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrCompanyNotFound    = errors.New("company not found")
)
