// Package cart manages an in-progress order: an ordered list of
// (item, quantity) selections with price snapshots taken from the catalog.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resto-pos/internal/model"
	"resto-pos/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ItemSource resolves menu items when lines are added.
type ItemSource interface {
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// OrderSink receives the order built by Commit.
type OrderSink interface {
	Append(ctx context.Context, order *model.Order) error
}

// Cart is a storage-key-scoped selection of items awaiting checkout. The
// customer-facing and staff-facing carts are independent instances with
// distinct keys.
type Cart struct {
	store  store.Store
	key    string
	items  ItemSource
	orders OrderSink
	logger zerolog.Logger
}

// New creates a cart persisted under key in the volatile store.
func New(st store.Store, key string, items ItemSource, orders OrderSink, logger zerolog.Logger) *Cart {
	return &Cart{
		store:  st,
		key:    key,
		items:  items,
		orders: orders,
		logger: logger.With().Str("service", "cart").Str("cart", key).Logger(),
	}
}

// Lines returns the current cart lines in insertion order.
func (c *Cart) Lines(ctx context.Context) ([]model.CartLine, error) {
	return c.load(ctx)
}

// AddLine resolves itemID against the catalog and adds quantity of it to the
// cart. An unknown item is a silent no-op. An existing line is incremented
// rather than duplicated.
func (c *Cart) AddLine(ctx context.Context, itemID string, quantity int) error {
	item, err := c.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		c.logger.Debug().Str("item_id", itemID).Msg("item not in catalog, line not added")
		return nil
	}

	lines, err := c.load(ctx)
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity += quantity
			return c.save(ctx, lines)
		}
	}

	lines = append(lines, model.CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
	})
	return c.save(ctx, lines)
}

// RemoveLine deletes the line for itemID if present.
func (c *Cart) RemoveLine(ctx context.Context, itemID string) error {
	lines, err := c.load(ctx)
	if err != nil {
		return err
	}

	filtered := lines[:0]
	for _, line := range lines {
		if line.ItemID != itemID {
			filtered = append(filtered, line)
		}
	}
	if len(filtered) == len(lines) {
		return nil
	}
	return c.save(ctx, filtered)
}

// SetQuantity sets the line's quantity exactly. A quantity of zero or below
// removes the line.
func (c *Cart) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveLine(ctx, itemID)
	}

	lines, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity = quantity
			return c.save(ctx, lines)
		}
	}
	return nil
}

// Total returns the sum of price*quantity over all lines, 0 when empty.
func (c *Cart) Total(ctx context.Context) (float64, error) {
	lines, err := c.load(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total, nil
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) error {
	return c.store.Delete(ctx, c.key)
}

// Checkout builds an order snapshot from the current lines without placing
// it or clearing the cart. The customer payment flow hands this snapshot to
// the payment step and only places it once payment is confirmed.
func (c *Cart) Checkout(ctx context.Context) (*model.Order, error) {
	lines, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	return &model.Order{
		ID:            uuid.NewString(),
		Items:         lines,
		Total:         total,
		Timestamp:     time.Now(),
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
	}, nil
}

// Commit places the cart as a new pending order in the ledger and clears the
// cart. It fails with ErrEmptyCart when there are no lines.
func (c *Cart) Commit(ctx context.Context) (*model.Order, error) {
	order, err := c.Checkout(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.orders.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	if err := c.Clear(ctx); err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("order_id", order.ID).
		Int("line_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed")
	return order, nil
}

func (c *Cart) load(ctx context.Context) ([]model.CartLine, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var lines []model.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		c.logger.Error().Err(err).Msg("corrupt cart contents")
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return lines, nil
}

func (c *Cart) save(ctx context.Context, lines []model.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
