package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcart/internal/client/storage"
	"github.com/iudanet/gophcart/internal/models"
)

// SaveItem stores or replaces a line item keyed by its ProductRef
func (s *Storage) SaveItem(ctx context.Context, item *models.LineItem) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		// Сериализуем позицию в JSON
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal cart item: %w", err)
		}

		// Сохраняем по ProductRef - инвариант "одна позиция на товар"
		// обеспечивается самим ключом bucket-а
		if err := bucket.Put([]byte(item.ProductRef), data); err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}

		return nil
	})
}

// GetItem retrieves a line item by ProductRef
func (s *Storage) GetItem(ctx context.Context, productRef string) (*models.LineItem, error) {
	var item *models.LineItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		data := bucket.Get([]byte(productRef))
		if data == nil {
			return storage.ErrItemNotFound
		}

		item = &models.LineItem{}
		if err := json.Unmarshal(data, item); err != nil {
			return fmt.Errorf("failed to unmarshal cart item: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems returns all persisted line items ordered by AddedAt
func (s *Storage) ListItems(ctx context.Context) ([]models.LineItem, error) {
	var items []models.LineItem

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var item models.LineItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal cart item: %w", err)
			}

			items = append(items, item)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// BoltDB итерируется в порядке ключей, восстанавливаем порядок добавления
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt.Before(items[j].AddedAt)
	})

	return items, nil
}

// DeleteItem removes a line item by ProductRef
func (s *Storage) DeleteItem(ctx context.Context, productRef string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return fmt.Errorf("cart bucket not found")
		}

		if bucket.Get([]byte(productRef)) == nil {
			return storage.ErrItemNotFound
		}

		if err := bucket.Delete([]byte(productRef)); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}

		return nil
	})
}

// Clear removes all line items
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCart); err != nil {
			return fmt.Errorf("failed to delete cart bucket: %w", err)
		}

		if _, err := tx.CreateBucket(bucketCart); err != nil {
			return fmt.Errorf("failed to recreate cart bucket: %w", err)
		}

		return nil
	})
}
