package storage

import (
	"context"

	"github.com/iudanet/gophcart/internal/models"
)

// CartStorage defines interface for server-side cart persistence
//
// Корзина хранит максимум одну строку на пару (user, product):
// повторное добавление того же товара суммирует количество
// вместо создания дубликата.
type CartStorage interface {
	// AddItem adds quantity of a product to the user's cart.
	// If a line for this product already exists, quantities are summed.
	// Returns the resulting cart line.
	AddItem(ctx context.Context, userID, productID string, quantity int64) (*models.CartLine, error)

	// ListLines returns all cart lines of the user joined with catalog
	// products, ordered by creation time
	ListLines(ctx context.Context, userID string) ([]models.CartLineDetail, error)

	// SetQuantity sets the absolute quantity of an existing line.
	// Returns ErrLineNotFound if the line doesn't belong to the user.
	SetQuantity(ctx context.Context, userID, lineID string, quantity int64) error

	// DeleteLine removes a line from the user's cart.
	// Returns ErrLineNotFound if the line doesn't belong to the user.
	DeleteLine(ctx context.Context, userID, lineID string) error

	// ClearCart removes all lines of the user's cart
	ClearCart(ctx context.Context, userID string) error
}
