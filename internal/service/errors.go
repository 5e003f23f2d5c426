package service

import "errors"

var (
	ErrNotFound           = errors.New("Resource not found")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrDuplicateUsername  = errors.New("Username already exists")
	ErrValidation         = errors.New("Validation failed")
)
