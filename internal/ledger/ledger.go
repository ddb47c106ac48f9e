// Package ledger owns the durable collection of placed orders and their
// workflow state.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"resto-pos/internal/model"
	"resto-pos/internal/store"

	"github.com/rs/zerolog"
)

// allowedTransitions is the kitchen workflow: pending -> preparing -> ready
// -> completed. Completed is terminal.
var allowedTransitions = map[model.Status]model.Status{
	model.StatusPending:   model.StatusPreparing,
	model.StatusPreparing: model.StatusReady,
	model.StatusReady:     model.StatusCompleted,
}

// Ledger manages the placed-order collection backed by the durable store.
type Ledger struct {
	store  store.Store
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a ledger over the given durable store.
func New(st store.Store, logger zerolog.Logger) *Ledger {
	return &Ledger{
		store:  st,
		logger: logger.With().Str("service", "ledger").Logger(),
		now:    time.Now,
	}
}

// List returns all orders sorted newest first.
func (l *Ledger) List(ctx context.Context) ([]model.Order, error) {
	orders, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
	return orders, nil
}

// FilterByStatus returns orders with the given status, newest first. The
// empty string and "all" match every order.
func (l *Ledger) FilterByStatus(ctx context.Context, status model.Status) ([]model.Order, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == "all" {
		return orders, nil
	}

	var matched []model.Order
	for _, order := range orders {
		if order.Status == status {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

// FindByID returns the order with the given id, or nil if absent.
func (l *Ledger) FindByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	l.logger.Debug().Str("order_id", id).Msg("order not found")
	return nil, nil
}

// Append inserts the order at the head of the collection so that every
// insertion path surfaces newest first.
func (l *Ledger) Append(ctx context.Context, order *model.Order) error {
	orders, err := l.load(ctx)
	if err != nil {
		return err
	}

	orders = append([]model.Order{*order}, orders...)
	if err := l.save(ctx, orders); err != nil {
		return err
	}

	l.logger.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Msg("order appended")
	return nil
}

// Transition moves the order to newStatus, enforcing the workflow edges.
// Moving to completed stamps CompletedAt. An unknown id is a silent no-op;
// an edge outside the workflow fails with ErrIllegalTransition.
func (l *Ledger) Transition(ctx context.Context, id string, newStatus model.Status) error {
	if !newStatus.Valid() {
		return model.ErrIllegalTransition
	}

	orders, err := l.load(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if allowedTransitions[orders[i].Status] != newStatus {
			l.logger.Warn().
				Str("order_id", id).
				Str("from", string(orders[i].Status)).
				Str("to", string(newStatus)).
				Msg("illegal status transition")
			return model.ErrIllegalTransition
		}

		orders[i].Status = newStatus
		if newStatus == model.StatusCompleted {
			completed := l.now()
			orders[i].CompletedAt = &completed
		}
		if err := l.save(ctx, orders); err != nil {
			return err
		}

		l.logger.Info().
			Str("order_id", id).
			Str("status", string(newStatus)).
			Msg("order status updated")
		return nil
	}
	return nil
}

// FinalizeExisting confirms payment for an order already in the ledger: the
// staff "resume pending order" flow. It marks payment completed, moves the
// order to completed, and stamps CompletedAt. Fails with ErrOrderNotFound
// for unknown ids.
func (l *Ledger) FinalizeExisting(ctx context.Context, id string) error {
	orders, err := l.load(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		completed := l.now()
		orders[i].Status = model.StatusCompleted
		orders[i].PaymentStatus = model.PaymentCompleted
		orders[i].CompletedAt = &completed
		if err := l.save(ctx, orders); err != nil {
			return err
		}

		l.logger.Info().Str("order_id", id).Msg("payment confirmed, order completed")
		return nil
	}
	return model.ErrOrderNotFound
}

// PlaceAndFinalize persists a not-yet-placed order with payment confirmed:
// the fresh customer checkout flow. The order enters the kitchen pipeline as
// pending even though it is already paid.
func (l *Ledger) PlaceAndFinalize(ctx context.Context, order *model.Order) error {
	order.Status = model.StatusPending
	order.PaymentStatus = model.PaymentCompleted
	return l.Append(ctx, order)
}

// Cancel removes the order from the ledger entirely. An unknown id is a
// no-op.
func (l *Ledger) Cancel(ctx context.Context, id string) error {
	orders, err := l.load(ctx)
	if err != nil {
		return err
	}

	filtered := orders[:0]
	for _, order := range orders {
		if order.ID != id {
			filtered = append(filtered, order)
		}
	}
	if len(filtered) == len(orders) {
		return nil
	}

	if err := l.save(ctx, filtered); err != nil {
		return err
	}

	l.logger.Info().Str("order_id", id).Msg("order cancelled")
	return nil
}

func (l *Ledger) load(ctx context.Context) ([]model.Order, error) {
	raw, ok, err := l.store.Get(ctx, store.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		l.logger.Error().Err(err).Msg("corrupt order collection")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (l *Ledger) save(ctx context.Context, orders []model.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	if err := l.store.Set(ctx, store.KeyOrders, raw); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}
