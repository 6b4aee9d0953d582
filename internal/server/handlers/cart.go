package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/server/storage"
	"github.com/iudanet/gophcart/internal/validation"
	"github.com/iudanet/gophcart/pkg/api"
)

// Серверные бизнес-правила агрегатов. Клиент их не воспроизводит -
// он получает готовые значения в summary.
const (
	// shippingFee - плоская ставка доставки для непустой корзины
	shippingFee = 550.0
	// taxRate - ставка налога от подытога
	taxRate = 0.10
	// commissionRate - комиссия платформы, клиент умножает сам
	commissionRate = 0.10
)

// CartHandler обрабатывает запросы серверной корзины
//
// Все операции требуют аутентификации: user_id берется из контекста,
// куда его кладет auth middleware.
type CartHandler struct {
	logger      *slog.Logger
	cartStorage storage.CartStorage
}

// NewCartHandler создает новый handler корзины
func NewCartHandler(logger *slog.Logger, cartStorage storage.CartStorage) *CartHandler {
	return &CartHandler{
		logger:      logger,
		cartStorage: cartStorage,
	}
}

// Get обрабатывает GET /api/v1/cart
// Возвращает позиции корзины вместе с серверными агрегатами
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	details, err := h.cartStorage.ListLines(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cart lines", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CartResponse{
		Items:   make([]api.CartItem, 0, len(details)),
		Summary: buildSummary(details),
	}
	for _, d := range details {
		resp.Items = append(resp.Items, api.CartItem{
			AddedAt:      d.Line.CreatedAt,
			LineID:       d.Line.ID,
			ProductID:    d.Product.ID,
			Name:         d.Product.Name,
			VendorID:     d.Product.VendorID,
			UnitPrice:    d.Product.Price,
			LineSubtotal: d.Product.Price * float64(d.Line.Quantity),
			Quantity:     d.Line.Quantity,
			Available:    d.Product.Available,
		})
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Add обрабатывает POST /api/v1/cart/add
// Повторное добавление того же товара суммирует количество
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req api.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateProductRef(req.ProductID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	line, err := h.cartStorage.AddItem(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.logger.WarnContext(ctx, "add rejected: unknown product",
				slog.String("product_id", req.ProductID))
			h.sendError(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to add cart line", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart line added",
		slog.String("user_id", userID),
		slog.String("product_id", req.ProductID),
		slog.String("line_id", line.ID),
		slog.Int64("quantity", line.Quantity))

	h.sendJSON(w, api.StatusResponse{Status: "ok"}, http.StatusOK)
}

// Update обрабатывает PUT /api/v1/cart/update
// Выставляет абсолютное количество существующей позиции
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req api.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.LineID == "" {
		h.sendError(w, "line_id is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateQuantity(req.Quantity); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.cartStorage.SetQuantity(ctx, userID, req.LineID, req.Quantity); err != nil {
		if errors.Is(err, storage.ErrLineNotFound) {
			h.sendError(w, "cart line not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update cart line", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart line updated",
		slog.String("user_id", userID),
		slog.String("line_id", req.LineID),
		slog.Int64("quantity", req.Quantity))

	h.sendJSON(w, api.StatusResponse{Status: "ok"}, http.StatusOK)
}

// Remove обрабатывает DELETE /api/v1/cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	var req api.RemoveItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.LineID == "" {
		h.sendError(w, "line_id is required", http.StatusBadRequest)
		return
	}

	if err := h.cartStorage.DeleteLine(ctx, userID, req.LineID); err != nil {
		if errors.Is(err, storage.ErrLineNotFound) {
			h.sendError(w, "cart line not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete cart line", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart line removed",
		slog.String("user_id", userID),
		slog.String("line_id", req.LineID))

	h.sendJSON(w, api.StatusResponse{Status: "ok"}, http.StatusOK)
}

// Clear обрабатывает DELETE /api/v1/cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "user not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.cartStorage.ClearCart(ctx, userID); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))

	h.sendJSON(w, api.StatusResponse{Status: "ok"}, http.StatusOK)
}

// buildSummary считает серверные агрегаты корзины.
//
// Недоступные позиции остаются видимыми в списке, но исключаются
// из подытога: доступность и присутствие - независимые вещи.
func buildSummary(details []models.CartLineDetail) *api.CartSummary {
	var subtotal float64
	var hasAvailable bool

	for _, d := range details {
		if !d.Product.Available {
			continue
		}
		hasAvailable = true
		subtotal += d.Product.Price * float64(d.Line.Quantity)
	}

	summary := &api.CartSummary{
		Subtotal:       models.Float64(subtotal),
		Tax:            models.Float64(subtotal * taxRate),
		CommissionRate: models.Float64(commissionRate),
	}

	if hasAvailable {
		summary.ShippingFee = models.Float64(shippingFee)
	} else {
		summary.ShippingFee = models.Float64(0)
	}

	return summary
}

// sendJSON отправляет JSON ответ
func (h *CartHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *CartHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
