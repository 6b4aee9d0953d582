package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/server/storage"
)

// AddItem adds quantity of a product to the user's cart.
//
// Пара (user_id, product_id) уникальна: повторное добавление того же
// товара суммирует количество вместо создания второй строки. Upsert
// атомарный, идентификатор строки при суммировании не меняется.
func (s *Storage) AddItem(ctx context.Context, userID, productID string, quantity int64) (*models.CartLine, error) {
	query := `
		INSERT INTO cart_lines (id, user_id, product_id, quantity, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = quantity + excluded.quantity
		RETURNING id, user_id, product_id, quantity, created_at
	`

	line := &models.CartLine{}
	err := s.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		userID,
		productID,
		quantity,
		time.Now(),
	).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
		&line.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to upsert cart line: %w", err)
	}

	return line, nil
}

// ListLines returns all cart lines of the user joined with catalog products
func (s *Storage) ListLines(ctx context.Context, userID string) ([]models.CartLineDetail, error) {
	query := `
		SELECT l.id, l.user_id, l.product_id, l.quantity, l.created_at,
		       p.id, p.name, p.vendor_id, p.price, p.available, p.created_at
		FROM cart_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.user_id = ?
		ORDER BY l.created_at, l.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart lines: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var details []models.CartLineDetail
	for rows.Next() {
		var d models.CartLineDetail
		err := rows.Scan(
			&d.Line.ID,
			&d.Line.UserID,
			&d.Line.ProductID,
			&d.Line.Quantity,
			&d.Line.CreatedAt,
			&d.Product.ID,
			&d.Product.Name,
			&d.Product.VendorID,
			&d.Product.Price,
			&d.Product.Available,
			&d.Product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart lines: %w", err)
	}

	return details, nil
}

// SetQuantity sets the absolute quantity of an existing line
func (s *Storage) SetQuantity(ctx context.Context, userID, lineID string, quantity int64) error {
	query := `UPDATE cart_lines SET quantity = ? WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, quantity, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrLineNotFound
	}

	return nil
}

// DeleteLine removes a line from the user's cart
func (s *Storage) DeleteLine(ctx context.Context, userID, lineID string) error {
	query := `DELETE FROM cart_lines WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, lineID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrLineNotFound
	}

	return nil
}

// ClearCart removes all lines of the user's cart
func (s *Storage) ClearCart(ctx context.Context, userID string) error {
	query := `DELETE FROM cart_lines WHERE user_id = ?`

	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
