package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcart/internal/client/storage"
	"github.com/iudanet/gophcart/internal/models"
)

// newMemoryStorage возвращает мок хранилища поверх map
func newMemoryStorage() (*storage.CartStorageMock, map[string]models.LineItem) {
	items := make(map[string]models.LineItem)

	mock := &storage.CartStorageMock{
		SaveItemFunc: func(ctx context.Context, item *models.LineItem) error {
			items[item.ProductRef] = *item
			return nil
		},
		GetItemFunc: func(ctx context.Context, productRef string) (*models.LineItem, error) {
			if item, ok := items[productRef]; ok {
				return &item, nil
			}
			return nil, storage.ErrItemNotFound
		},
		ListItemsFunc: func(ctx context.Context) ([]models.LineItem, error) {
			result := make([]models.LineItem, 0, len(items))
			for _, item := range items {
				result = append(result, item)
			}
			return result, nil
		},
		DeleteItemFunc: func(ctx context.Context, productRef string) error {
			delete(items, productRef)
			return nil
		},
		ClearFunc: func(ctx context.Context) error {
			for k := range items {
				delete(items, k)
			}
			return nil
		},
	}

	return mock, items
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLedger(t *testing.T) (*Ledger, map[string]models.LineItem) {
	t.Helper()

	mock, items := newMemoryStorage()
	ledger, err := New(context.Background(), mock, testLogger())
	require.NoError(t, err)

	return ledger, items
}

func TestAddLine_IncrementsExisting(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	// Гость добавляет товар A: 2, затем еще 3
	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 2})
	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 3})

	items := ledger.List()
	require.Len(t, items, 1)
	assert.Equal(t, "prod-a", items[0].ProductRef)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestAddLine_UpdatesDisplayData(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 1})
	ledger.AddLine(ctx, models.LineItem{
		ProductRef: "prod-a",
		Quantity:   1,
		Name:       "Widget",
		UnitPrice:  models.Float64(100),
	})

	items := ledger.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	require.NotNil(t, items[0].UnitPrice)
	assert.Equal(t, 100.0, *items[0].UnitPrice)
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 2})
	ledger.SetQuantity(ctx, "prod-a", 7)

	items := ledger.List()
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].Quantity)
}

func TestSetQuantityZero_EqualsRemove(t *testing.T) {
	ctx := context.Background()

	// Две одинаковые корзины: одной делаем SetQuantity(0), другой RemoveLine
	ledgerA, _ := newTestLedger(t)
	ledgerB, _ := newTestLedger(t)

	ledgerA.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 2})
	ledgerB.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 2})

	ledgerA.SetQuantity(ctx, "prod-a", 0)
	ledgerB.RemoveLine(ctx, "prod-a")

	assert.Equal(t, ledgerB.List(), ledgerA.List())
	assert.Equal(t, 0, ledgerA.Len())
}

func TestRemoveLine_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 1})
	ledger.RemoveLine(ctx, "prod-missing")

	assert.Equal(t, 1, ledger.Len())
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	ledger, persisted := newTestLedger(t)

	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 1})
	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-b", Quantity: 2})

	ledger.Clear(ctx)

	assert.Equal(t, 0, ledger.Len())
	assert.Empty(t, persisted)
}

func TestNew_LoadsPersistedItems(t *testing.T) {
	ctx := context.Background()
	mock, items := newMemoryStorage()
	items["prod-a"] = models.LineItem{ProductRef: "prod-a", Quantity: 4}

	ledger, err := New(ctx, mock, testLogger())
	require.NoError(t, err)

	got := ledger.List()
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].Quantity)
}

func TestNew_UnreadableStorageStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mock := &storage.CartStorageMock{
		ListItemsFunc: func(ctx context.Context) ([]models.LineItem, error) {
			return nil, errors.New("corrupted db")
		},
	}

	ledger, err := New(ctx, mock, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())
}

func TestStorageFailure_KeepsInMemoryState(t *testing.T) {
	ctx := context.Background()

	// Хранилище исчерпало квоту - каждая запись падает
	mock := &storage.CartStorageMock{
		ListItemsFunc: func(ctx context.Context) ([]models.LineItem, error) {
			return nil, nil
		},
		SaveItemFunc: func(ctx context.Context, item *models.LineItem) error {
			return errors.New("quota exceeded")
		},
		DeleteItemFunc: func(ctx context.Context, productRef string) error {
			return errors.New("quota exceeded")
		},
		ClearFunc: func(ctx context.Context) error {
			return errors.New("quota exceeded")
		},
	}

	ledger, err := New(ctx, mock, testLogger())
	require.NoError(t, err)

	// Операции обязаны выполняться в памяти несмотря на ошибки хранилища
	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 2})
	assert.Equal(t, 1, ledger.Len())

	ledger.SetQuantity(ctx, "prod-a", 5)
	assert.Equal(t, int64(5), ledger.List()[0].Quantity)

	ledger.RemoveLine(ctx, "prod-a")
	assert.Equal(t, 0, ledger.Len())
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newTestLedger(t)

	ledger.AddLine(ctx, models.LineItem{ProductRef: "prod-a", Quantity: 1})

	snap := ledger.Snapshot()
	assert.Equal(t, models.ProvenanceLocal, snap.Provenance)
	require.Len(t, snap.Items, 1)

	// Снапшот не связан с живым состоянием
	snap.Items[0].Quantity = 99
	assert.Equal(t, int64(1), ledger.List()[0].Quantity)
}
