package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           string     `json:"id"`            // UUID пользователя
	Username     string     `json:"username"`      // уникальный username
	PasswordHash string     `json:"password_hash"` // bcrypt хеш пароля
	CreatedAt    time.Time  `json:"created_at"`    // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Product представляет товар каталога на стороне сервера
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	VendorID  string    `json:"vendor_id"`
	Price     float64   `json:"price"`
	Available bool      `json:"available"` // false пока у продавца не настроены выплаты
	CreatedAt time.Time `json:"created_at"`
}

// CartLine представляет строку серверной корзины
type CartLine struct {
	ID        string    `json:"id"`      // UUID строки, выдается сервером
	UserID    string    `json:"user_id"` // владелец корзины
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLineDetail представляет строку корзины вместе с товаром каталога
// Используется при отдаче корзины клиенту
type CartLineDetail struct {
	Line    CartLine
	Product Product
}
