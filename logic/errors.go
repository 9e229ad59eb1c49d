package logic

import "errors"

var (
	// ErrNotFound covers a missing record, a record owned by another
	// user, and a conversation that is no longer ACTIVE. Callers cannot
	// tell these apart, so nothing leaks about other users' data.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for an unknown email and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvariant signals a progress aggregate inconsistent with its
	// merge contract. It indicates store corruption and must be logged,
	// never absorbed.
	ErrInvariant = errors.New("progress invariant violated")
)
