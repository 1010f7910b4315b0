package domain

import "errors"

// ErrSessionNotFound is returned when an operation targets a session id
// that does not exist in the store.
var ErrSessionNotFound = errors.New("session not found")
