package model

import "errors"

// Sentinel errors shared across layers. Repositories and services return
// these wrapped; the HTTP edge maps them to status codes.
var (
	// ErrNotFound means no record matched the query, including the case
	// where a record exists but belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken means a signup collided with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token failure mode: bad signature,
	// malformed, expired, missing subject.
	ErrInvalidToken = errors.New("invalid token")
)
