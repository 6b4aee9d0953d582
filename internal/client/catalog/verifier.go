// Package catalog сверяет позиции серверной корзины с живым каталогом
// и вычищает ссылки на удаленные товары.
package catalog

import (
	"context"
	"errors"
	"log/slog"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/pkg/api"
)

// Verifier проверяет существование товаров корзины в каталоге
type Verifier struct {
	catalog clientapi.CatalogAPI
	gateway clientapi.CartAPI
	logger  *slog.Logger
}

// NewVerifier создает новый verifier
func NewVerifier(catalogAPI clientapi.CatalogAPI, gateway clientapi.CartAPI, logger *slog.Logger) *Verifier {
	return &Verifier{
		catalog: catalogAPI,
		gateway: gateway,
		logger:  logger,
	}
}

// Verify сверяет каждую позицию с каталогом и возвращает очищенный список.
//
// Позиция-сирота (товар удален из каталога) удаляется из списка и
// best-effort удаляется на сервере - ошибка удаления логируется, но не
// мешает показать пользователю очищенную корзину. Любая другая ошибка
// lookup-а (транзиентный сбой сети) оставляет позицию как есть,
// непроверенной: пользователь не должен терять товар из-за чужого сбоя.
//
// Для найденных товаров флаг Unavailable выставляется из каталога.
func (v *Verifier) Verify(ctx context.Context, accessToken string, items []models.LineItem) []models.LineItem {
	kept := make([]models.LineItem, 0, len(items))

	for _, item := range items {
		product, err := v.catalog.LookupProduct(ctx, item.ProductRef)

		if isProductMissing(product, err) {
			v.logger.Info("pruning orphaned cart line",
				"product_ref", item.ProductRef,
				"remote_line_id", item.RemoteLineID)
			v.removeOrphan(ctx, accessToken, item)
			continue
		}

		if err != nil {
			// Неоднозначный результат - каталог недоступен, товар оставляем
			v.logger.Warn("product verification ambiguous, keeping line",
				"product_ref", item.ProductRef,
				"error", err)
			kept = append(kept, item)
			continue
		}

		item.Unavailable = !product.Available
		if product.Name != "" {
			item.Name = product.Name
		}
		kept = append(kept, item)
	}

	return kept
}

// isProductMissing - единственное место, где решается "товар удален".
//
// Каталог сигнализирует отсутствие товара двумя наблюдаемыми способами:
// статусом 404 и ответом без обязательных полей (пустой результат).
// Оба обязаны трактоваться одинаково. Это неоднозначность контракта
// upstream-сервиса, а не выбор дизайна: новые формы сигнала должны
// добавляться здесь, а лучше - уточняться с владельцами каталога.
func isProductMissing(product *api.ProductResponse, err error) bool {
	if errors.Is(err, clientapi.ErrNotFound) {
		return true
	}
	if err != nil {
		// Прочие ошибки неоднозначны, их решает вызывающий код
		return false
	}
	return product == nil || product.ID == "" || product.Name == ""
}

// removeOrphan best-effort удаляет осиротевшую позицию на сервере
func (v *Verifier) removeOrphan(ctx context.Context, accessToken string, item models.LineItem) {
	// Позиция без line id серверу неизвестна - удалять нечего
	if item.RemoteLineID == "" {
		return
	}

	if err := v.gateway.RemoveItem(ctx, accessToken, item.RemoteLineID); err != nil {
		v.logger.Warn("failed to remove orphaned line server-side",
			"product_ref", item.ProductRef,
			"remote_line_id", item.RemoteLineID,
			"error", err)
	}
}
