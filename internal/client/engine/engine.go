// Package engine реализует reconciliation engine корзины: единый фасад
// над гостевым ledger-ом и зеркалом серверной корзины.
//
// Гостевые операции идут напрямую в локальный ledger и всегда успешны.
// Авторизованные операции применяются оптимистично к зеркалу, затем
// подтверждаются вызовом шлюза; отказ шлюза откатывает зеркало к
// состоянию до операции, байт в байт.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/client/cart"
	"github.com/iudanet/gophcart/internal/client/catalog"
	"github.com/iudanet/gophcart/internal/models"
)

// Session представляет авторизованную сессию пользователя
// nil-сессия означает гостевой режим
type Session struct {
	UserID      string
	AccessToken string
}

// Engine согласует локальную и серверную корзины
//
// Мьютекс удерживается на все время операции, включая сетевые вызовы:
// операции одного клиента строго последовательны, гонок между
// оптимистичным применением и откатом не бывает.
type Engine struct {
	gateway  clientapi.CartAPI
	verifier *catalog.Verifier
	local    *cart.Ledger
	logger   *slog.Logger

	mu        sync.Mutex
	mirror    []models.LineItem   // зеркало серверной корзины
	summary   *models.CartSummary // серверные агрегаты, nil = устарели
	fetched   bool                // зеркало инициализировано хотя бы одним fetch-ом
	migrating bool                // идет login merge
}

// New создает engine
func New(gateway clientapi.CartAPI, verifier *catalog.Verifier, local *cart.Ledger, logger *slog.Logger) *Engine {
	return &Engine{
		gateway:  gateway,
		verifier: verifier,
		local:    local,
		logger:   logger,
	}
}

// View возвращает авторитетную корзину для отображения
//
// В гостевом режиме это локальный ledger, агрегатов нет. В авторизованном -
// зеркало серверной корзины и последние серверные агрегаты; первое
// обращение выполняет полный fetch со сверкой каталога.
func (e *Engine) View(ctx context.Context, sess *Session) (models.Ledger, *models.CartSummary, error) {
	if sess == nil {
		return e.local.Snapshot(), nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureFetchedLocked(ctx, sess); err != nil {
		return models.Ledger{}, nil, fmt.Errorf("fetch cart: %w", err)
	}

	return e.mirrorLedgerLocked(), e.summaryCloneLocked(), nil
}

// Add добавляет товар в корзину; повторное добавление суммирует количество
//
// display несет денормализованные поля для отображения (имя, цена из
// каталога), его Quantity игнорируется в пользу аргумента quantity.
func (e *Engine) Add(ctx context.Context, sess *Session, productRef string, quantity int64, display models.LineItem) error {
	line := display
	line.ProductRef = productRef
	line.Quantity = quantity
	line.RemoteLineID = ""
	line.LineSubtotal = nil

	if sess == nil {
		e.local.AddLine(ctx, line)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureFetchedLocked(ctx, sess); err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	// Оптимистичное применение
	m := e.captureLocked(productRef)
	if m.prev != nil {
		e.mirror[m.prevIndex].Quantity += quantity
		e.mirror[m.prevIndex].LineSubtotal = nil
	} else {
		e.mirror = append(e.mirror, line)
	}
	e.summary = nil

	if err := e.gateway.AddItem(ctx, sess.AccessToken, productRef, quantity); err != nil {
		e.rollbackLocked(m)
		return fmt.Errorf("add item: %w", err)
	}

	return nil
}

// SetQuantity выставляет абсолютное количество позиции
// Количество <= 0 эквивалентно удалению
func (e *Engine) SetQuantity(ctx context.Context, sess *Session, productRef string, quantity int64) error {
	if quantity <= 0 {
		return e.Remove(ctx, sess, productRef)
	}

	if sess == nil {
		e.local.SetQuantity(ctx, productRef, quantity)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureFetchedLocked(ctx, sess); err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	// update требует серверный line id; позиция без него - оптимистичная,
	// сервер мог уже присвоить идентификатор: быстрый refetch перед решением
	idx := e.findLocked(productRef)
	if idx < 0 || e.mirror[idx].RemoteLineID == "" {
		if err := e.refreshLocked(ctx, sess, false); err != nil {
			return fmt.Errorf("resolve line id: %w", err)
		}
		idx = e.findLocked(productRef)
	}

	m := e.captureLocked(productRef)

	if idx >= 0 && e.mirror[idx].RemoteLineID != "" {
		lineID := e.mirror[idx].RemoteLineID
		e.mirror[idx].Quantity = quantity
		e.mirror[idx].LineSubtotal = nil
		e.summary = nil

		if err := e.gateway.UpdateItem(ctx, sess.AccessToken, lineID, quantity); err != nil {
			e.rollbackLocked(m)
			return fmt.Errorf("update item: %w", err)
		}

		return nil
	}

	// Сервер позицию не знает - add выставит искомое количество,
	// так как суммировать не с чем
	if idx >= 0 {
		e.mirror[idx].Quantity = quantity
		e.mirror[idx].LineSubtotal = nil
	} else {
		e.mirror = append(e.mirror, models.LineItem{
			ProductRef: productRef,
			Quantity:   quantity,
		})
	}
	e.summary = nil

	if err := e.gateway.AddItem(ctx, sess.AccessToken, productRef, quantity); err != nil {
		e.rollbackLocked(m)
		return fmt.Errorf("set quantity via add: %w", err)
	}

	return nil
}

// Remove удаляет позицию корзины
// Отсутствующая позиция - тихий no-op, как и в гостевом ledger-е
func (e *Engine) Remove(ctx context.Context, sess *Session, productRef string) error {
	if sess == nil {
		e.local.RemoveLine(ctx, productRef)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ensureFetchedLocked(ctx, sess); err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	idx := e.findLocked(productRef)
	if idx < 0 {
		return nil
	}

	if e.mirror[idx].RemoteLineID == "" {
		// Позиция еще не подтверждена сервером - уточняем идентификатор
		if err := e.refreshLocked(ctx, sess, false); err != nil {
			return fmt.Errorf("resolve line id: %w", err)
		}
		idx = e.findLocked(productRef)
		if idx < 0 {
			return nil
		}
	}

	m := e.captureLocked(productRef)
	lineID := e.mirror[idx].RemoteLineID
	e.mirror = slices.Delete(e.mirror, idx, idx+1)
	e.summary = nil

	if lineID == "" {
		// Сервер позицию так и не подтвердил - удаление чисто локальное
		return nil
	}

	err := e.gateway.RemoveItem(ctx, sess.AccessToken, lineID)
	if err != nil && !errors.Is(err, clientapi.ErrNotFound) {
		e.rollbackLocked(m)
		return fmt.Errorf("remove item: %w", err)
	}

	return nil
}

// Clear удаляет все позиции корзины
func (e *Engine) Clear(ctx context.Context, sess *Session) error {
	if sess == nil {
		e.local.Clear(ctx)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Как и остальные мутации, clear работает только поверх
	// инициализированного зеркала: иначе откат вернул бы пустую корзину
	if err := e.ensureFetchedLocked(ctx, sess); err != nil {
		return fmt.Errorf("fetch cart: %w", err)
	}

	prev := models.CloneItems(e.mirror)
	prevSummary := e.summary
	e.mirror = nil
	e.summary = nil

	if err := e.gateway.ClearCart(ctx, sess.AccessToken); err != nil {
		e.mirror = prev
		e.summary = prevSummary
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

// mutation хранит pre-state одной позиции для отката оптимистичной операции
type mutation struct {
	productRef string
	prev       *models.LineItem // nil = позиции не было
	prevIndex  int
}

// captureLocked снимает pre-state позиции перед оптимистичной мутацией
func (e *Engine) captureLocked(productRef string) mutation {
	m := mutation{productRef: productRef, prevIndex: -1}
	if idx := e.findLocked(productRef); idx >= 0 {
		cp := e.mirror[idx]
		m.prev = &cp
		m.prevIndex = idx
	}
	return m
}

// rollbackLocked возвращает позицию к снятому pre-state
//
// Агрегаты после отката остаются сброшенными: зеркало позиции
// восстановлено точно, а серверные суммы и так были инвалидированы.
func (e *Engine) rollbackLocked(m mutation) {
	idx := e.findLocked(m.productRef)

	if m.prev == nil {
		// Позиции не было - убираем оптимистично добавленную
		if idx >= 0 {
			e.mirror = slices.Delete(e.mirror, idx, idx+1)
		}
		return
	}

	if idx >= 0 {
		e.mirror[idx] = *m.prev
		return
	}

	// Позиция была оптимистично удалена - возвращаем на прежнее место
	at := m.prevIndex
	if at > len(e.mirror) {
		at = len(e.mirror)
	}
	e.mirror = slices.Insert(e.mirror, at, *m.prev)
}

func (e *Engine) findLocked(productRef string) int {
	return models.FindItem(e.mirror, productRef)
}

// mirrorLedgerLocked возвращает копию зеркала как remote ledger
func (e *Engine) mirrorLedgerLocked() models.Ledger {
	return models.Ledger{
		Provenance: models.ProvenanceRemote,
		Items:      models.CloneItems(e.mirror),
	}
}

func (e *Engine) summaryCloneLocked() *models.CartSummary {
	if e.summary == nil {
		return nil
	}
	cp := *e.summary
	return &cp
}
