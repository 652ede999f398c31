// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")
	ErrNotLoggedIn    = errors.New("not logged in")

	// Validation errors raised before anything is sent to the backend.
	ErrInvalidPeriod = errors.New("rental start must be before rental end")
	ErrInvalidPrice  = errors.New("price must be a non-negative number")

	// ErrOperationFailed marks a mutation the backend answered with success=false.
	ErrOperationFailed = errors.New("operation failed")
)
