package api

import "errors"

// Error taxonomy of the client. Backend failures are mapped onto these
// sentinels and matched with errors.Is; the presentation layer decides the
// user-visible messaging.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("username already taken")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnavailable  = errors.New("server unavailable")
)
