package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/gophcart/internal/merge"
	"github.com/iudanet/gophcart/internal/models"
)

// MergeFailure описывает один неудавшийся вызов шлюза при слиянии
type MergeFailure struct {
	ProductRef string
	Op         string
	Err        error
}

// MergeResult представляет итог слияния гостевой корзины при логине
type MergeResult struct {
	Carried   int // позиций в гостевой корзине на момент логина
	Scheduled int // запланированных вызовов шлюза
	Failures  []MergeFailure
}

// MergeOnLogin сливает гостевую корзину в серверную после успешного логина
//
// Шаги:
//  1. снапшот гостевой корзины (carry-набор);
//  2. fast-path fetch серверной корзины; пустой carry-набор - просто
//     принимаем серверную корзину и выходим;
//  3. план слияния: совпадения суммируются, уникальные позиции добавляются;
//  4. оптимистичное принятие объединенного ledger-а, гостевая корзина
//     очищается ровно один раз;
//  5. конкурентное исполнение запланированных вызовов, ошибки собираются
//     по позициям и не прерывают соседние вызовы;
//  6. подтверждающий fast-path fetch; позиции неудавшихся add-ов, которых
//     сервер не знает, остаются видимыми в зеркале без line id.
//
// Отказ на шаге 2 прерывает слияние целиком: гостевая корзина не тронута,
// логин остается валидным. Повторный вызов до завершения предыдущего
// возвращает ErrMergeInProgress. Гостевые правки, успевшие в ledger после
// очистки на шаге 4, сохраняются - повторной очистки нет.
//
// Мьютекс engine-а не удерживается на время сетевых вызовов, иначе
// guard по migrating был бы ненаблюдаем снаружи.
func (e *Engine) MergeOnLogin(ctx context.Context, sess *Session) (*MergeResult, error) {
	if sess == nil || sess.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}

	e.mu.Lock()
	if e.migrating {
		e.mu.Unlock()
		return nil, ErrMergeInProgress
	}
	e.migrating = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.migrating = false
		e.mu.Unlock()
	}()

	carry := e.local.List()

	// Слияние использует fast-path fetch без сверки каталога -
	// латентность логина важнее немедленной чистки сирот
	remote, summary, err := e.fetchRemote(ctx, sess)
	if err != nil {
		// Слияние отложено, гостевая корзина цела
		return nil, fmt.Errorf("fetch remote cart: %w", err)
	}

	if len(carry) == 0 {
		// Сливать нечего - принимаем серверную корзину как есть
		e.adopt(remote, summary)
		return &MergeResult{}, nil
	}

	plan := merge.Build(carry, remote)
	result := &MergeResult{
		Carried:   len(carry),
		Scheduled: len(plan.Ops),
	}

	// Оптимистичное принятие: пользователь сразу видит объединенную
	// корзину, гостевая очищается до разрешения сетевых вызовов
	e.adopt(models.CloneItems(plan.Merged), nil)
	e.local.Clear(ctx)

	failures := e.executeOps(ctx, sess, plan.Ops)

	for i, opErr := range failures {
		if opErr == nil {
			continue
		}
		op := plan.Ops[i]
		e.logger.Warn("merge operation failed",
			"op", op.Kind.String(),
			"product_ref", op.ProductRef,
			"error", opErr)
		result.Failures = append(result.Failures, MergeFailure{
			ProductRef: op.ProductRef,
			Op:         op.Kind.String(),
			Err:        opErr,
		})
	}

	e.confirmMerge(ctx, sess, plan, failures)

	return result, nil
}

// adopt замещает зеркало и агрегаты под мьютексом
func (e *Engine) adopt(items []models.LineItem, summary *models.CartSummary) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mirror = items
	e.summary = summary
	e.fetched = true
}

// executeOps конкурентно исполняет запланированные вызовы шлюза
// Ошибки независимы по позициям: отказ одной не отменяет остальные
func (e *Engine) executeOps(ctx context.Context, sess *Session, ops []merge.Op) []error {
	failures := make([]error, len(ops))

	var wg sync.WaitGroup
	for i, op := range ops {
		wg.Add(1)
		go func(i int, op merge.Op) {
			defer wg.Done()
			switch op.Kind {
			case merge.OpUpdate:
				failures[i] = e.gateway.UpdateItem(ctx, sess.AccessToken, op.RemoteLineID, op.Quantity)
			default:
				failures[i] = e.gateway.AddItem(ctx, sess.AccessToken, op.ProductRef, op.Quantity)
			}
		}(i, op)
	}
	wg.Wait()

	return failures
}

// confirmMerge перечитывает серверную корзину после исполнения плана
//
// Подтвержденный список замещает оптимистичный, но позиции неудавшихся
// add-ов, которых сервер не знает, дописываются обратно: пользователь
// не должен молча терять товар из-за отказа шлюза.
func (e *Engine) confirmMerge(ctx context.Context, sess *Session, plan merge.Plan, failures []error) {
	confirmed, summary, err := e.fetchRemote(ctx, sess)
	if err != nil {
		e.logger.Warn("merge confirmation refetch failed, keeping optimistic state",
			"error", err)
		return
	}

	for i, opErr := range failures {
		if opErr == nil {
			continue
		}
		op := plan.Ops[i]
		if models.FindItem(confirmed, op.ProductRef) >= 0 {
			continue
		}
		idx := models.FindItem(plan.Merged, op.ProductRef)
		if idx < 0 {
			continue
		}
		line := plan.Merged[idx]
		line.RemoteLineID = ""
		line.LineSubtotal = nil
		confirmed = append(confirmed, line)
	}

	e.adopt(confirmed, summary)
}

// Logout сбрасывает все клиентское состояние корзины
//
// Чисто локальная операция: серверная корзина остается как есть и
// будет заново слита при следующем логине. Гостевой ledger очищается -
// новый гость после чужого logout-а начинает с пустой корзины.
func (e *Engine) Logout(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mirror = nil
	e.summary = nil
	e.fetched = false
	e.local.Clear(ctx)
}

