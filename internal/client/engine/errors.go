package engine

import "errors"

// Sentinel errors of the reconciliation engine
var (
	// ErrMergeInProgress indicates a login merge re-entered while the
	// previous one has not finished
	ErrMergeInProgress = errors.New("cart merge already in progress")

	// ErrNotAuthenticated indicates an operation requiring a session
	// was called without one
	ErrNotAuthenticated = errors.New("not authenticated")
)
