package store

import "errors"

// Sentinel errors returned by Store operations. Callers match them with
// errors.Is to map persistence failures to API responses.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrIconNotFound    = errors.New("icon not found")
	ErrInvalidRole     = errors.New("invalid message role")
)
