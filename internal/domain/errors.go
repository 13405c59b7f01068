package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist. Callers branch on it; it is a normal outcome.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed email, destination too short, missing
// date range). Handlers map it to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrPersistence is returned when the local key-value store cannot be read
// or written. It is never fatal: the in-memory operation that triggered the
// write is not rolled back. Handlers map it to HTTP 503.
var ErrPersistence = errors.New("persistence error")
