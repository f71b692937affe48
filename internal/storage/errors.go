package storage

import "errors"

// ErrNotFound is returned when a requested resume, profile schedule file,
// or schedule entry does not exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")
