package storage

import (
	"context"

	"github.com/iudanet/gophcart/internal/models"
)

// ProductStorage defines interface for catalog persistence
type ProductStorage interface {
	// CreateProduct adds a product to the catalog
	// Returns ErrProductAlreadyExists on id collision
	CreateProduct(ctx context.Context, product *models.Product) error

	// GetProduct retrieves product by ID
	// Returns ErrProductNotFound if product doesn't exist
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// ListProducts returns all catalog products ordered by creation time
	ListProducts(ctx context.Context) ([]models.Product, error)
}
