package models

import "time"

// Provenance указывает происхождение ledger-а: локальная гостевая корзина
// или зеркало серверной корзины
type Provenance string

const (
	// ProvenanceLocal - гостевая корзина, живет только в client storage
	ProvenanceLocal Provenance = "local"
	// ProvenanceRemote - зеркало авторитетной серверной корзины
	ProvenanceRemote Provenance = "remote"
)

// LineItem представляет присутствие одного товара в корзине
//
// Инвариант: внутри одного ledger-а не может быть двух LineItem
// с одинаковым ProductRef. Quantity всегда положительное — позиция
// с нулевым количеством не хранится, а удаляется.
type LineItem struct {
	AddedAt      time.Time `json:"added_at,omitempty"`
	ProductRef   string    `json:"product_ref"`
	Name         string    `json:"name,omitempty"`           // денормализованное имя для отображения
	RemoteLineID string    `json:"remote_line_id,omitempty"` // пустое = сервер позицию еще не подтвердил
	VendorRef    string    `json:"vendor_ref,omitempty"`
	UnitPrice    *float64  `json:"unit_price,omitempty"`    // серверный снапшот цены, приоритетнее локальных расчетов
	LineSubtotal *float64  `json:"line_subtotal,omitempty"` // серверный снапшот суммы позиции
	Quantity     int64     `json:"quantity"`
	Unavailable  bool      `json:"unavailable,omitempty"` // товар есть в корзине, но исключен из итогов
}

// Ledger представляет упорядоченный набор позиций одной корзины
type Ledger struct {
	Provenance Provenance `json:"provenance"`
	Items      []LineItem `json:"items"`
}

// CartSummary представляет агрегаты, объявленные сервером
// nil-поле означает что сервер значение не прислал и клиент
// должен использовать локальную формулу
type CartSummary struct {
	Subtotal       *float64 `json:"subtotal,omitempty"`
	ShippingFee    *float64 `json:"shipping_fee,omitempty"`
	Tax            *float64 `json:"tax,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}

// FindItem возвращает индекс позиции с указанным ProductRef или -1
// ProductRef уникален внутри ledger-а, поэтому линейного поиска достаточно
func FindItem(items []LineItem, productRef string) int {
	for i := range items {
		if items[i].ProductRef == productRef {
			return i
		}
	}
	return -1
}

// CloneItems возвращает копию среза позиций
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Float64 возвращает указатель на значение
// Вспомогательная функция для опциональных полей summary
func Float64(v float64) *float64 {
	return &v
}
