package api

// ProductResponse представляет ответ каталога на GET /api/v1/products/{id}
//
// Валидный товар всегда имеет непустые ID и Name. Каталог, к сожалению,
// сигнализирует отсутствие товара двумя способами: статусом 404 либо
// ответом без обязательных полей — клиент обязан трактовать оба одинаково.
type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	VendorID  string  `json:"vendor_id,omitempty"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"` // false когда у продавца не настроены выплаты
}

// CreateProductRequest представляет запрос POST /api/v1/products
type CreateProductRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	VendorID  string  `json:"vendor_id,omitempty"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
