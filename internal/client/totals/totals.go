// Package totals содержит чистые функции расчета итогов корзины.
//
// Серверные агрегаты всегда приоритетнее локальных формул: клиент не
// воспроизводит серверные бизнес-правила скидок и комиссий, локальные
// формулы - только fallback на случай, когда сервер значение не прислал.
package totals

import "github.com/iudanet/gophcart/internal/models"

// Локальные fallback-правила
const (
	// DefaultShippingFee - плоская ставка доставки для непустой корзины
	DefaultShippingFee = 550.0
	// DefaultTaxRate - ставка налога от подытога
	DefaultTaxRate = 0.10
	// DefaultCommissionRate - комиссия платформы от подытога
	DefaultCommissionRate = 0.10
)

// Totals представляет рассчитанные итоги корзины
type Totals struct {
	ItemCount  int64   // суммарное количество доступных товаров
	LineCount  int     // число видимых позиций
	Subtotal   float64 // подытог
	Shipping   float64 // доставка
	Tax        float64 // налог
	Commission float64 // комиссия платформы
	Total      float64 // итого к оплате
}

// Calculate считает итоги по авторитетному ledger-у и опциональным
// серверным агрегатам.
//
// Позиции с флагом Unavailable видимы в списке, но исключаются из
// количеств и денежных итогов: доступность и присутствие в корзине -
// независимые вещи.
func Calculate(items []models.LineItem, summary *models.CartSummary) Totals {
	t := Totals{LineCount: len(items)}

	var computedSubtotal float64
	for _, item := range items {
		if item.Unavailable {
			continue
		}

		t.ItemCount += item.Quantity
		computedSubtotal += lineTotal(item)
	}

	t.Subtotal = computedSubtotal
	if summary != nil && summary.Subtotal != nil {
		t.Subtotal = *summary.Subtotal
	}

	t.Shipping = 0
	if t.ItemCount > 0 {
		t.Shipping = DefaultShippingFee
	}
	if summary != nil && summary.ShippingFee != nil {
		t.Shipping = *summary.ShippingFee
	}

	t.Tax = t.Subtotal * DefaultTaxRate
	if summary != nil && summary.Tax != nil {
		t.Tax = *summary.Tax
	}

	rate := DefaultCommissionRate
	if summary != nil && summary.CommissionRate != nil {
		rate = *summary.CommissionRate
	}
	t.Commission = t.Subtotal * rate

	t.Total = t.Subtotal + t.Shipping + t.Tax + t.Commission
	return t
}

// lineTotal возвращает стоимость позиции, предпочитая серверный снапшот
func lineTotal(item models.LineItem) float64 {
	if item.LineSubtotal != nil {
		return *item.LineSubtotal
	}
	if item.UnitPrice != nil {
		return *item.UnitPrice * float64(item.Quantity)
	}
	// Цена неизвестна (гостевая позиция без данных каталога)
	return 0
}
