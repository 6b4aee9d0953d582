package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProductNotFound indicates that product doesn't exist in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a catalog id collision
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrLineNotFound indicates that cart line was not found
	ErrLineNotFound = errors.New("cart line not found")
)
