package service

import "errors"

// Sentinel errors shared by the services. Handlers translate them into HTTP
// statuses; anything else is treated as an opaque internal failure.
var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrFileTooLarge       = errors.New("file size exceeds limit")
)
