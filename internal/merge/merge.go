// Package merge содержит чистую логику слияния гостевой корзины
// с серверной при логине.
//
// Правило разрешения конфликта: количества всегда суммируются.
// Engine никогда не отбрасывает одну из сторон и не ограничивает
// суммарное количество по стоку - лимиты стока проверяет сервер
// на соответствующем add/update вызове.
package merge

import (
	"github.com/iudanet/gophcart/internal/models"
)

// OpKind определяет тип запланированного вызова шлюза
type OpKind int

const (
	// OpAdd - добавить товар (позиции нет на сервере, либо fallback
	// для серверной позиции без line id)
	OpAdd OpKind = iota
	// OpUpdate - выставить суммарное количество существующей позиции
	OpUpdate
)

// String возвращает читаемое имя операции для логов
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Op представляет один запланированный вызов шлюза
type Op struct {
	ProductRef   string
	RemoteLineID string // заполнен только для OpUpdate
	Quantity     int64  // для OpUpdate - суммарное количество, для OpAdd - переносимое
	Kind         OpKind
}

// Plan описывает результат планирования слияния: вызовы шлюза
// и оптимистичный объединенный ledger
type Plan struct {
	Ops    []Op
	Merged []models.LineItem
}

// Build планирует слияние carry-набора (снапшот гостевой корзины
// на момент начала логина) в серверную корзину.
//
// Для каждой гостевой позиции:
//   - товар есть на сервере: суммарное количество = серверное + гостевое,
//     планируется update по line id; если у серверной позиции нет line id
//     (аномалия), планируется add как fallback;
//   - товара нет на сервере: планируется add с гостевым количеством.
//
// Merged - серверная корзина с просуммированными совпадениями и
// дописанными в конец уникальными гостевыми позициями. Порядок серверных
// позиций сохраняется.
func Build(carry, remote []models.LineItem) Plan {
	plan := Plan{
		Merged: models.CloneItems(remote),
	}
	if plan.Merged == nil {
		plan.Merged = []models.LineItem{}
	}

	for _, item := range carry {
		idx := models.FindItem(plan.Merged, item.ProductRef)

		if idx < 0 {
			// Товара нет на сервере - переносим гостевую позицию как есть,
			// line id появится после подтверждающего fetch
			carried := item
			carried.RemoteLineID = ""
			plan.Merged = append(plan.Merged, carried)

			plan.Ops = append(plan.Ops, Op{
				Kind:       OpAdd,
				ProductRef: item.ProductRef,
				Quantity:   item.Quantity,
			})
			continue
		}

		// Совпадение - суммируем количества
		total := plan.Merged[idx].Quantity + item.Quantity
		plan.Merged[idx].Quantity = total
		// Серверные снапшоты суммы позиции больше не соответствуют
		// количеству, сбрасываем до подтверждающего fetch-а
		plan.Merged[idx].LineSubtotal = nil

		if lineID := plan.Merged[idx].RemoteLineID; lineID != "" {
			plan.Ops = append(plan.Ops, Op{
				Kind:         OpUpdate,
				ProductRef:   item.ProductRef,
				RemoteLineID: lineID,
				Quantity:     total,
			})
		} else {
			// Серверная позиция без line id - update невозможен,
			// add суммирует количество на сервере
			plan.Ops = append(plan.Ops, Op{
				Kind:       OpAdd,
				ProductRef: item.ProductRef,
				Quantity:   item.Quantity,
			})
		}
	}

	return plan
}

