package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcart/internal/client/storage"
	"github.com/iudanet/gophcart/internal/models"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "cart_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestItem формирует тестовую позицию корзины
func createTestItem(ref string, qty int64, addedAt time.Time) *models.LineItem {
	return &models.LineItem{
		ProductRef: ref,
		Name:       "Test Product",
		Quantity:   qty,
		UnitPrice:  models.Float64(100),
		AddedAt:    addedAt,
	}
}

func TestSaveGetDeleteItem(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	item := createTestItem("prod-1", 2, time.Now())

	// Сохраняем позицию
	err := store.SaveItem(ctx, item)
	require.NoError(t, err)

	// Получаем позицию по ProductRef
	got, err := store.GetItem(ctx, "prod-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.ProductRef, got.ProductRef)
	assert.Equal(t, item.Quantity, got.Quantity)
	assert.Equal(t, item.Name, got.Name)
	require.NotNil(t, got.UnitPrice)
	assert.Equal(t, 100.0, *got.UnitPrice)

	// Удаляем позицию
	err = store.DeleteItem(ctx, "prod-1")
	require.NoError(t, err)

	// Повторное чтение возвращает ErrItemNotFound
	_, err = store.GetItem(ctx, "prod-1")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestGetItem_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestDeleteItem_NotFound(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.DeleteItem(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestSaveItem_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveItem(ctx, createTestItem("prod-1", 2, time.Now())))
	require.NoError(t, store.SaveItem(ctx, createTestItem("prod-1", 7, time.Now())))

	// Одна позиция на товар - повторное сохранение заменяет, а не дублирует
	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].Quantity)
}

func TestListItems_OrderedByAddedAt(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	base := time.Now()

	// Сохраняем в порядке, обратном порядку добавления
	// Ключи bolt отсортированы лексикографически, порядок должен
	// восстановиться по AddedAt
	require.NoError(t, store.SaveItem(ctx, createTestItem("a-prod", 1, base.Add(2*time.Second))))
	require.NoError(t, store.SaveItem(ctx, createTestItem("z-prod", 1, base)))
	require.NoError(t, store.SaveItem(ctx, createTestItem("m-prod", 1, base.Add(time.Second))))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "z-prod", items[0].ProductRef)
	assert.Equal(t, "m-prod", items[1].ProductRef)
	assert.Equal(t, "a-prod", items[2].ProductRef)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveItem(ctx, createTestItem("prod-1", 1, time.Now())))
	require.NoError(t, store.SaveItem(ctx, createTestItem("prod-2", 3, time.Now())))

	err := store.Clear(ctx)
	require.NoError(t, err)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Хранилище остается рабочим после очистки
	require.NoError(t, store.SaveItem(ctx, createTestItem("prod-3", 1, time.Now())))
	items, err = store.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
