package engine

import (
	"context"
	"fmt"

	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/pkg/api"
)

// ensureFetchedLocked лениво инициализирует зеркало первым полным fetch-ом
// Полный fetch включает сверку позиций с каталогом
func (e *Engine) ensureFetchedLocked(ctx context.Context, sess *Session) error {
	if e.fetched {
		return nil
	}
	return e.refreshLocked(ctx, sess, true)
}

// refreshLocked перечитывает серверную корзину и замещает зеркало
//
// verify=true дополнительно сверяет позиции с каталогом и вычищает
// сирот; быстрый refetch (verify=false) используется при ленивом
// разрешении line id, где нужны только серверные идентификаторы.
func (e *Engine) refreshLocked(ctx context.Context, sess *Session, verify bool) error {
	items, summary, err := e.fetchRemote(ctx, sess)
	if err != nil {
		return err
	}

	if verify {
		items = e.verifier.Verify(ctx, sess.AccessToken, items)
	}

	e.mirror = items
	e.summary = summary
	e.fetched = true
	return nil
}

// fetchRemote запрашивает серверную корзину и переводит ее во
// внутреннюю модель. Не трогает состояние engine-а
func (e *Engine) fetchRemote(ctx context.Context, sess *Session) ([]models.LineItem, *models.CartSummary, error) {
	resp, err := e.gateway.GetCart(ctx, sess.AccessToken)
	if err != nil {
		return nil, nil, fmt.Errorf("get cart: %w", err)
	}
	return itemsFromAPI(resp.Items), summaryFromAPI(resp.Summary), nil
}

// itemsFromAPI переводит серверные позиции во внутреннюю модель
func itemsFromAPI(items []api.CartItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.LineItem{
			AddedAt:      it.AddedAt,
			ProductRef:   it.ProductID,
			Name:         it.Name,
			RemoteLineID: it.LineID,
			VendorRef:    it.VendorID,
			UnitPrice:    models.Float64(it.UnitPrice),
			LineSubtotal: models.Float64(it.LineSubtotal),
			Quantity:     it.Quantity,
			Unavailable:  !it.Available,
		})
	}
	return out
}

// summaryFromAPI переводит серверные агрегаты во внутреннюю модель
func summaryFromAPI(s *api.CartSummary) *models.CartSummary {
	if s == nil {
		return nil
	}
	return &models.CartSummary{
		Subtotal:       s.Subtotal,
		ShippingFee:    s.ShippingFee,
		Tax:            s.Tax,
		CommissionRate: s.CommissionRate,
	}
}
