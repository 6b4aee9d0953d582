package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/server/storage"
	"github.com/iudanet/gophcart/internal/validation"
	"github.com/iudanet/gophcart/pkg/api"
)

// ProductsHandler обрабатывает запросы каталога
//
// Каталог публичный: проверка товара нужна еще до логина,
// когда гость наполняет локальную корзину.
type ProductsHandler struct {
	logger         *slog.Logger
	productStorage storage.ProductStorage
}

// NewProductsHandler создает новый handler каталога
func NewProductsHandler(logger *slog.Logger, productStorage storage.ProductStorage) *ProductsHandler {
	return &ProductsHandler{
		logger:         logger,
		productStorage: productStorage,
	}
}

// Get обрабатывает GET /api/v1/products/{id}
// Отсутствующий товар - честный 404, а не пустой ответ
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Извлекаем id из path parameter (Go 1.22+)
	productID := r.PathValue("id")
	if productID == "" {
		h.sendError(w, "product id is required", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateProductRef(productID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.productStorage.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.logger.WarnContext(ctx, "product not found", slog.String("product_id", productID))
			h.sendError(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		VendorID:  product.VendorID,
		Price:     product.Price,
		Available: product.Available,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// List обрабатывает GET /api/v1/products
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.productStorage.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, api.ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			VendorID:  p.VendorID,
			Price:     p.Price,
			Available: p.Available,
		})
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/products
// Заведение товара продавцом; available=false пока не настроены выплаты
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateProductRef(req.ID); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		h.sendError(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		h.sendError(w, "price must not be negative", http.StatusBadRequest)
		return
	}

	product := &models.Product{
		ID:        req.ID,
		Name:      req.Name,
		VendorID:  req.VendorID,
		Price:     req.Price,
		Available: req.Available,
		CreatedAt: time.Now(),
	}

	if err := h.productStorage.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, storage.ErrProductAlreadyExists) {
			h.sendError(w, "product already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create product", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("vendor_id", product.VendorID))

	h.sendJSON(w, api.StatusResponse{Status: "ok"}, http.StatusCreated)
}

// sendJSON отправляет JSON ответ
func (h *ProductsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *ProductsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
