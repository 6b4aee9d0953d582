package api

import "time"

// CartItem представляет одну позицию серверной корзины
type CartItem struct {
	AddedAt      time.Time `json:"added_at"`
	LineID       string    `json:"line_id"`    // серверный идентификатор позиции
	ProductID    string    `json:"product_id"` // идентификатор товара в каталоге
	Name         string    `json:"name"`
	VendorID     string    `json:"vendor_id,omitempty"`
	UnitPrice    float64   `json:"unit_price"`
	LineSubtotal float64   `json:"line_subtotal"`
	Quantity     int64     `json:"quantity"`
	Available    bool      `json:"available"`
}

// CartSummary представляет агрегаты, рассчитанные сервером
// Отсутствующее поле означает "сервер значение не прислал"
type CartSummary struct {
	Subtotal       *float64 `json:"subtotal,omitempty"`
	ShippingFee    *float64 `json:"shipping_fee,omitempty"`
	Tax            *float64 `json:"tax,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}

// CartResponse представляет ответ на GET /api/v1/cart
type CartResponse struct {
	Summary *CartSummary `json:"summary,omitempty"`
	Items   []CartItem   `json:"items"`
}

// AddItemRequest представляет запрос POST /api/v1/cart/add
// Повторное добавление товара суммирует количество с существующей позицией
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateItemRequest представляет запрос PUT /api/v1/cart/update
type UpdateItemRequest struct {
	LineID   string `json:"line_id"`
	Quantity int64  `json:"quantity"`
}

// RemoveItemRequest представляет запрос DELETE /api/v1/cart/remove
type RemoveItemRequest struct {
	LineID string `json:"line_id"`
}

// StatusResponse представляет конверт успешного ответа на мутацию
type StatusResponse struct {
	Status  string `json:"status"`            // машиночитаемый статус ("ok")
	Message string `json:"message,omitempty"` // человекочитаемое сообщение
}
