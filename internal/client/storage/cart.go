package storage

import (
	"context"

	"github.com/iudanet/gophcart/internal/models"
)

//go:generate moq -out cartstorage_mock.go . CartStorage

// CartStorage defines interface for persisting the guest cart ledger on client
//
// Хранилище - единственный дисковый артефакт гостевой корзины: набор позиций
// {product_ref, quantity} плюс денормализованные данные товара для отображения.
type CartStorage interface {
	// SaveItem stores or replaces a line item keyed by its ProductRef
	SaveItem(ctx context.Context, item *models.LineItem) error

	// GetItem retrieves a line item by ProductRef
	// Returns ErrItemNotFound if item doesn't exist
	GetItem(ctx context.Context, productRef string) (*models.LineItem, error)

	// ListItems returns all persisted line items
	ListItems(ctx context.Context) ([]models.LineItem, error)

	// DeleteItem removes a line item by ProductRef
	DeleteItem(ctx context.Context, productRef string) error

	// Clear removes all line items
	Clear(ctx context.Context) error
}
