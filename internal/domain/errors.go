package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNoUser is returned when an operation requires an authenticated user.
	ErrNoUser = errors.New("no authenticated user")
	// ErrUnavailable indicates the product cannot currently be ordered.
	ErrUnavailable = errors.New("product unavailable")
	// ErrBadTransition indicates a status change that is not allowed.
	ErrBadTransition = errors.New("status transition not allowed")
)
