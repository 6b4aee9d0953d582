package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerify_AllProductsExist(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return &api.ProductResponse{ID: productID, Name: "Widget", Available: true}, nil
		},
	}
	gatewayMock := &clientapi.CartAPIMock{}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-1", RemoteLineID: "line-1", Quantity: 1},
		{ProductRef: "prod-2", RemoteLineID: "line-2", Quantity: 2},
	}

	kept := v.Verify(context.Background(), "token", items)

	require.Len(t, kept, 2)
	assert.False(t, kept[0].Unavailable)
	// Денормализованное имя обновляется из каталога
	assert.Equal(t, "Widget", kept[0].Name)
	assert.Empty(t, gatewayMock.RemoveItemCalls())
}

func TestVerify_OrphanPrunedOn404(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			if productID == "prod-gone" {
				return nil, clientapi.ErrNotFound
			}
			return &api.ProductResponse{ID: productID, Name: "Widget", Available: true}, nil
		},
	}
	gatewayMock := &clientapi.CartAPIMock{
		RemoveItemFunc: func(ctx context.Context, accessToken, lineID string) error {
			return nil
		},
	}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-1", RemoteLineID: "line-1", Quantity: 1},
		{ProductRef: "prod-gone", RemoteLineID: "line-2", Quantity: 2},
	}

	kept := v.Verify(context.Background(), "token", items)

	require.Len(t, kept, 1)
	assert.Equal(t, "prod-1", kept[0].ProductRef)

	// Для сироты выписан best-effort remove на сервер
	calls := gatewayMock.RemoveItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "line-2", calls[0].LineID)
}

func TestVerify_OrphanPrunedOnEmptyPayload(t *testing.T) {
	// Каталог сигнализирует отсутствие не 404-м, а ответом без
	// обязательных полей - обе формы должны давать одинаковый результат
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return &api.ProductResponse{}, nil
		},
	}
	gatewayMock := &clientapi.CartAPIMock{
		RemoveItemFunc: func(ctx context.Context, accessToken, lineID string) error {
			return nil
		},
	}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-gone", RemoteLineID: "line-1", Quantity: 1},
	}

	kept := v.Verify(context.Background(), "token", items)

	assert.Empty(t, kept)
	assert.Len(t, gatewayMock.RemoveItemCalls(), 1)
}

func TestVerify_TransientErrorKeepsItem(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	gatewayMock := &clientapi.CartAPIMock{}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-1", RemoteLineID: "line-1", Quantity: 1},
	}

	kept := v.Verify(context.Background(), "token", items)

	// Транзиентный сбой каталога не должен отнимать товар у пользователя
	require.Len(t, kept, 1)
	assert.Equal(t, "prod-1", kept[0].ProductRef)
	assert.Empty(t, gatewayMock.RemoveItemCalls())
}

func TestVerify_RemoveFailureStillPrunes(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return nil, clientapi.ErrNotFound
		},
	}
	gatewayMock := &clientapi.CartAPIMock{
		RemoveItemFunc: func(ctx context.Context, accessToken, lineID string) error {
			return errors.New("timeout")
		},
	}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-gone", RemoteLineID: "line-1", Quantity: 1},
	}

	kept := v.Verify(context.Background(), "token", items)

	// Ошибка серверного удаления не мешает показать очищенную корзину
	assert.Empty(t, kept)
}

func TestVerify_OrphanWithoutLineIDSkipsRemove(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return nil, clientapi.ErrNotFound
		},
	}
	gatewayMock := &clientapi.CartAPIMock{}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-gone", Quantity: 1},
	}

	kept := v.Verify(context.Background(), "token", items)

	assert.Empty(t, kept)
	assert.Empty(t, gatewayMock.RemoveItemCalls())
}

func TestVerify_UnavailableProductFlagged(t *testing.T) {
	catalogMock := &clientapi.CatalogAPIMock{
		LookupProductFunc: func(ctx context.Context, productID string) (*api.ProductResponse, error) {
			return &api.ProductResponse{ID: productID, Name: "Widget", Available: false}, nil
		},
	}
	gatewayMock := &clientapi.CartAPIMock{}

	v := NewVerifier(catalogMock, gatewayMock, testLogger())

	items := []models.LineItem{
		{ProductRef: "prod-1", RemoteLineID: "line-1", Quantity: 1},
	}

	kept := v.Verify(context.Background(), "token", items)

	// Недоступный товар остается видимым, но помечается
	require.Len(t, kept, 1)
	assert.True(t, kept[0].Unavailable)
}
