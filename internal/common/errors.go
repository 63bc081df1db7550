// Package common defines shared constants and sentinel errors used across
// the CoinKeeper client and dev backend. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Auth errors (invalid credentials, duplicate registration email).
	// User-visible on the originating form.
	ErrAuth = errors.New("authentication failed")

	// ErrNotAuthenticated means an owner-scoped operation was invoked
	// without a resolved identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Repository/backend-level errors.
	ErrNotFound = errors.New("not found")

	// ErrTransport means the request channel itself failed (network down,
	// non-2xx without a structured body).
	ErrTransport = errors.New("transport error")

	// ErrSessionInvalid marks the silent restore outcomes: no persisted
	// token, or a token that no longer resolves to a user. Both are normal
	// "you are logged out" states and must never reach the user as an
	// error message.
	ErrSessionInvalid = errors.New("session invalid")

	// Validation errors caught before any request is issued.
	ErrValidation = errors.New("validation error")
)
