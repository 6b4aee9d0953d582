package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/server/storage"
)

// CreateProduct adds a product to the catalog
func (s *Storage) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, vendor_id, price, available, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.VendorID,
		product.Price,
		product.Available,
		product.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: products.id") {
			return storage.ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// GetProduct retrieves product by ID
func (s *Storage) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `
		SELECT id, name, vendor_id, price, available, created_at
		FROM products
		WHERE id = ?
	`

	product := &models.Product{}
	err := s.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.VendorID,
		&product.Price,
		&product.Available,
		&product.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts returns all catalog products ordered by creation time
func (s *Storage) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, vendor_id, price, available, created_at
		FROM products
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.VendorID, &p.Price, &p.Available, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
