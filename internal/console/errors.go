package console

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("admin role required")

	ErrEmptyField      = errors.New("steam login and contact are required")
	ErrInvalidAmount   = errors.New("amount must be a positive integer")
	ErrInvalidStatus   = errors.New("unknown request status")
	ErrRequestNotFound = errors.New("request not found")
)
