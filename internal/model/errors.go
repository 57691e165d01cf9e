package model

import "errors"

var (
	// ErrNotFound is returned by stores and lookups for missing keys.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when a login attempt does not
	// match any account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAuthenticated is returned by operations requiring a session
	// when none is active.
	ErrNotAuthenticated = errors.New("not authenticated")
)
