package storage

import "errors"

// ErrAuthNotFound is returned when no session is stored locally.
var ErrAuthNotFound = errors.New("auth data not found")
