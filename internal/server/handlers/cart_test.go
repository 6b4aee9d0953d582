package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/server/storage/sqlite"
	"github.com/iudanet/gophcart/pkg/api"
)

// seedUser заводит пользователя напрямую в хранилище
func seedUser(t *testing.T, store *sqlite.Storage) string {
	t.Helper()

	userID := uuid.New().String()
	err := store.CreateUser(context.Background(), &models.User{
		ID:           userID,
		Username:     "user_" + userID[:8],
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return userID
}

// seedProduct заводит товар каталога напрямую в хранилище
func seedProduct(t *testing.T, store *sqlite.Storage, id, name string, price float64, available bool) {
	t.Helper()

	err := store.CreateProduct(context.Background(), &models.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Available: available,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

// doAuthedJSON выполняет запрос с user_id в контексте, как после auth middleware
func doAuthedJSON(t *testing.T, handler http.HandlerFunc, method, target, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func getCart(t *testing.T, handler *CartHandler, userID string) api.CartResponse {
	t.Helper()

	w := doAuthedJSON(t, handler.Get, http.MethodGet, "/api/v1/cart", userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.CartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestCartHandler_AddAndGet(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := getCart(t, handler, userID)
	require.Len(t, resp.Items, 1)

	item := resp.Items[0]
	assert.NotEmpty(t, item.LineID)
	assert.Equal(t, "prod-1", item.ProductID)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, int64(2), item.Quantity)
	assert.Equal(t, 100.0, item.UnitPrice)
	assert.Equal(t, 200.0, item.LineSubtotal)
	assert.True(t, item.Available)

	require.NotNil(t, resp.Summary)
	require.NotNil(t, resp.Summary.Subtotal)
	assert.Equal(t, 200.0, *resp.Summary.Subtotal)
	require.NotNil(t, resp.Summary.ShippingFee)
	assert.Equal(t, 550.0, *resp.Summary.ShippingFee)
	require.NotNil(t, resp.Summary.Tax)
	assert.Equal(t, 20.0, *resp.Summary.Tax)
	require.NotNil(t, resp.Summary.CommissionRate)
	assert.Equal(t, 0.10, *resp.Summary.CommissionRate)
}

func TestCartHandler_AddSumsQuantity(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	firstLineID := getCart(t, handler, userID).Items[0].LineID

	// Повторное добавление суммирует, а не создает вторую строку
	w = doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := getCart(t, handler, userID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(5), resp.Items[0].Quantity)
	assert.Equal(t, firstLineID, resp.Items[0].LineID)
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "ghost",
		Quantity:  1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_AddValidation(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)

	tests := []struct {
		name string
		req  api.AddItemRequest
	}{
		{name: "empty product", req: api.AddItemRequest{ProductID: "", Quantity: 1}},
		{name: "zero quantity", req: api.AddItemRequest{ProductID: "prod-1", Quantity: 0}},
		{name: "negative quantity", req: api.AddItemRequest{ProductID: "prod-1", Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCartHandler_Update(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	lineID := getCart(t, handler, userID).Items[0].LineID

	w = doAuthedJSON(t, handler.Update, http.MethodPut, "/api/v1/cart/update", userID, api.UpdateItemRequest{
		LineID:   lineID,
		Quantity: 7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := getCart(t, handler, userID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(7), resp.Items[0].Quantity)
}

func TestCartHandler_UpdateMissingLine(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)

	w := doAuthedJSON(t, handler.Update, http.MethodPut, "/api/v1/cart/update", userID, api.UpdateItemRequest{
		LineID:   "no-such-line",
		Quantity: 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	lineID := getCart(t, handler, userID).Items[0].LineID

	w = doAuthedJSON(t, handler.Remove, http.MethodDelete, "/api/v1/cart/remove", userID, api.RemoveItemRequest{
		LineID: lineID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, getCart(t, handler, userID).Items)

	// Повторное удаление той же строки - 404
	w = doAuthedJSON(t, handler.Remove, http.MethodDelete, "/api/v1/cart/remove", userID, api.RemoveItemRequest{
		LineID: lineID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_RemoveForeignLine(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	owner := seedUser(t, store)
	intruder := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)

	w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", owner, api.AddItemRequest{
		ProductID: "prod-1",
		Quantity:  1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	lineID := getCart(t, handler, owner).Items[0].LineID

	// Чужую строку удалить нельзя
	w = doAuthedJSON(t, handler.Remove, http.MethodDelete, "/api/v1/cart/remove", intruder, api.RemoveItemRequest{
		LineID: lineID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.Len(t, getCart(t, handler, owner).Items, 1)
}

func TestCartHandler_Clear(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)
	seedProduct(t, store, "prod-2", "Gadget", 50, true)

	for _, id := range []string{"prod-1", "prod-2"} {
		w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
			ProductID: id,
			Quantity:  1,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doAuthedJSON(t, handler.Clear, http.MethodDelete, "/api/v1/cart/clear", userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := getCart(t, handler, userID)
	assert.Empty(t, resp.Items)

	// Пустая корзина - нулевые агрегаты и нулевая доставка
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 0.0, *resp.Summary.Subtotal)
	assert.Equal(t, 0.0, *resp.Summary.ShippingFee)
}

func TestCartHandler_UnavailableExcludedFromSummary(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)
	userID := seedUser(t, store)
	seedProduct(t, store, "prod-1", "Widget", 100, true)
	seedProduct(t, store, "prod-2", "Orphan", 999, false)

	for _, id := range []string{"prod-1", "prod-2"} {
		w := doAuthedJSON(t, handler.Add, http.MethodPost, "/api/v1/cart/add", userID, api.AddItemRequest{
			ProductID: id,
			Quantity:  1,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	resp := getCart(t, handler, userID)

	// Недоступная позиция видима в списке, но исключена из подытога
	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 100.0, *resp.Summary.Subtotal)
	assert.Equal(t, 10.0, *resp.Summary.Tax)
}

func TestCartHandler_Unauthenticated(t *testing.T) {
	store := newTestStorage(t)
	handler := NewCartHandler(setupTestLogger(), store)

	// Запрос без user_id в контексте
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
