package domain

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when the admin secret does not match.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidInput is returned when the request is invalid (e.g. an
// invitation batch with no parseable recipients).
var ErrInvalidInput = errors.New("invalid input")

// ErrConflict is returned when an insert hits a uniqueness constraint
// (invitation email or email+event already present).
var ErrConflict = errors.New("already exists")
