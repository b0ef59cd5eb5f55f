package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned by CreateUser when the store-level
	// unique index on email rejects the insert.
	ErrEmailAlreadyExists = errors.New("a user with this email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no
	// user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrVersionConflict is returned by conditional updates when the user
	// row was modified between the read and the write. Callers retry the
	// whole read-modify-write cycle.
	ErrVersionConflict = errors.New("user version conflict")
)
