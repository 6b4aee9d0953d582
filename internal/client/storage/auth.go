package storage

import (
	"context"
	"time"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage defines interface for storing session data on client
type AuthStorage interface {
	// SaveAuth stores authentication data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData represents session information in storage
type AuthData struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired reports whether the stored access token is past its expiry
func (a *AuthData) Expired(now time.Time) bool {
	return a.ExpiresAt != 0 && now.Unix() >= a.ExpiresAt
}
