package domain

import "errors"

var (
	// ErrBadRequest is returned when the caller supplied malformed or oversized input
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned when no requested entity could be resolved at all
	ErrNotFound = errors.New("not found")
)
