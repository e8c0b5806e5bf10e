package store

import "errors"

var (
	// ErrUserExists indicates a username uniqueness conflict.
	ErrUserExists = errors.New("user already exists")

	// ErrDuplicateID indicates a request id is already present in the ledger.
	ErrDuplicateID = errors.New("request id already exists")

	// ErrInvalidID indicates a non-positive request id.
	ErrInvalidID = errors.New("request id must be positive")
)
