package api

import (
	"errors"
	"fmt"
)

// Sentinel errors of the remote gateway
var (
	// ErrAuthRequired indicates a mutating call without a valid session (401)
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound indicates the requested resource doesn't exist (404)
	ErrNotFound = errors.New("resource not found")
)

// UpstreamError represents a structured rejection from the server,
// например превышение стока или невалидный запрос
type UpstreamError struct {
	Status  string // машиночитаемый код из конверта ошибки
	Message string // человекочитаемое сообщение
	Code    int    // HTTP статус
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d %s): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d %s)", e.Code, e.Status)
}

// IsNetworkFailure reports whether err is a transport-level failure
// (unreachable, timeout) rather than a structured server response
func IsNetworkFailure(err error) bool {
	if err == nil {
		return false
	}
	var upstream *UpstreamError
	return !errors.Is(err, ErrAuthRequired) &&
		!errors.Is(err, ErrNotFound) &&
		!errors.As(err, &upstream)
}
