package cart

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/gophcart/internal/client/storage"
	"github.com/iudanet/gophcart/internal/models"
)

// Ledger представляет гостевую корзину: in-memory список позиций
// с немедленной персистенцией в client storage
//
// Все операции синхронные и всегда успешны в памяти. Ошибка персистенции
// (исчерпание квоты хранилища и т.п.) логируется как warning и не
// прерывает операцию - деградировавшая, но рабочая гостевая корзина
// лучше падения.
type Ledger struct {
	storage storage.CartStorage
	logger  *slog.Logger
	items   []models.LineItem
	mu      sync.Mutex
}

// New создает ledger и загружает сохраненные позиции из хранилища
func New(ctx context.Context, cartStorage storage.CartStorage, logger *slog.Logger) (*Ledger, error) {
	l := &Ledger{
		storage: cartStorage,
		logger:  logger,
	}

	items, err := cartStorage.ListItems(ctx)
	if err != nil {
		// Нечитаемое хранилище - начинаем с пустой корзины
		logger.Warn("failed to load persisted cart, starting empty", "error", err)
		return l, nil
	}

	l.items = items
	return l, nil
}

// AddLine добавляет позицию; если товар уже в корзине - суммирует количество
// Денормализованные поля (Name, UnitPrice, VendorRef) обновляются из
// переданной позиции, если они заполнены
func (l *Ledger) AddLine(ctx context.Context, item models.LineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductRef != item.ProductRef {
			continue
		}

		l.items[i].Quantity += item.Quantity
		if item.Name != "" {
			l.items[i].Name = item.Name
		}
		if item.UnitPrice != nil {
			l.items[i].UnitPrice = item.UnitPrice
		}
		if item.VendorRef != "" {
			l.items[i].VendorRef = item.VendorRef
		}

		l.persistItem(ctx, l.items[i])
		return
	}

	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	l.items = append(l.items, item)
	l.persistItem(ctx, item)
}

// SetQuantity выставляет абсолютное количество позиции
// Количество <= 0 эквивалентно удалению позиции
func (l *Ledger) SetQuantity(ctx context.Context, productRef string, quantity int64) {
	if quantity <= 0 {
		l.RemoveLine(ctx, productRef)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductRef != productRef {
			continue
		}

		l.items[i].Quantity = quantity
		l.persistItem(ctx, l.items[i])
		return
	}
}

// RemoveLine удаляет позицию по ProductRef
func (l *Ledger) RemoveLine(ctx context.Context, productRef string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ProductRef != productRef {
			continue
		}

		l.items = append(l.items[:i], l.items[i+1:]...)

		if err := l.storage.DeleteItem(ctx, productRef); err != nil {
			l.logger.Warn("failed to persist cart item removal",
				"product_ref", productRef,
				"error", err)
		}
		return
	}
}

// Clear удаляет все позиции
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil

	if err := l.storage.Clear(ctx); err != nil {
		l.logger.Warn("failed to clear persisted cart", "error", err)
	}
}

// List возвращает копию позиций в порядке добавления
func (l *Ledger) List() []models.LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	return models.CloneItems(l.items)
}

// Snapshot возвращает копию корзины как ledger с локальным провенансом
func (l *Ledger) Snapshot() models.Ledger {
	return models.Ledger{
		Provenance: models.ProvenanceLocal,
		Items:      l.List(),
	}
}

// Len возвращает число позиций
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.items)
}

// persistItem сохраняет позицию, деградируя в warning при ошибке
// Вызывается под mutex
func (l *Ledger) persistItem(ctx context.Context, item models.LineItem) {
	if err := l.storage.SaveItem(ctx, &item); err != nil {
		l.logger.Warn("failed to persist cart item, in-memory state kept",
			"product_ref", item.ProductRef,
			"error", err)
	}
}
