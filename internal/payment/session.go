package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"resto-pos/internal/model"
	"resto-pos/internal/store"

	"github.com/rs/zerolog"
)

// Session carries payment state through the volatile store between the
// checkout surface and the confirmation step. The two hand-off shapes select
// the two finalization paths explicitly: a stashed order snapshot means
// "place and finalize", a stashed order id means "finalize existing".
type Session struct {
	store  store.Store
	logger zerolog.Logger
}

// NewSession creates a payment session over the volatile store.
func NewSession(st store.Store, logger zerolog.Logger) *Session {
	return &Session{
		store:  st,
		logger: logger.With().Str("service", "payment").Logger(),
	}
}

// StashOrder stores the not-yet-placed order snapshot for the customer
// checkout flow.
func (s *Session) StashOrder(ctx context.Context, order *model.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order snapshot: %w", err)
	}
	return s.store.Set(ctx, store.KeyCurrentOrder, raw)
}

// TakeOrder retrieves and clears the stashed order snapshot. Returns nil
// when nothing was stashed.
func (s *Session) TakeOrder(ctx context.Context) (*model.Order, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyCurrentOrder)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var order model.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		s.logger.Error().Err(err).Msg("corrupt order snapshot")
		return nil, fmt.Errorf("failed to decode order snapshot: %w", err)
	}
	if err := s.store.Delete(ctx, store.KeyCurrentOrder); err != nil {
		return nil, err
	}
	return &order, nil
}

// StashOrderID stores the id of a ledger order being paid for in the staff
// flow.
func (s *Session) StashOrderID(ctx context.Context, id string) error {
	return s.store.Set(ctx, store.KeyPaymentOrderID, []byte(id))
}

// TakeOrderID retrieves and clears the stashed ledger order id. The boolean
// reports whether an id was stashed.
func (s *Session) TakeOrderID(ctx context.Context) (string, bool, error) {
	raw, ok, err := s.store.Get(ctx, store.KeyPaymentOrderID)
	if err != nil || !ok {
		return "", false, err
	}
	if err := s.store.Delete(ctx, store.KeyPaymentOrderID); err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}
