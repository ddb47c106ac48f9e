// Package catalog owns the menu-item collection: CRUD, capacity enforcement,
// search filtering, and the default starter set.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"resto-pos/internal/model"
	"resto-pos/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxItems caps the catalog size; Add fails once the limit is reached.
const MaxItems = 1000

// Catalog manages the menu-item collection backed by the durable store.
type Catalog struct {
	store  store.Store
	logger zerolog.Logger
}

// New creates a catalog over the given durable store.
func New(st store.Store, logger zerolog.Logger) *Catalog {
	return &Catalog{
		store:  st,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns all menu items in insertion order.
func (c *Catalog) List(ctx context.Context) ([]model.MenuItem, error) {
	return c.load(ctx)
}

// GetByID returns the item with the given id, or nil if absent.
func (c *Catalog) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	c.logger.Debug().Str("item_id", id).Msg("item not found")
	return nil, nil
}

// Filter returns items matching the category (empty or "all" matches every
// category) and a case-insensitive substring query over name and description.
func (c *Catalog) Filter(ctx context.Context, category, query string) ([]model.MenuItem, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	var matched []model.MenuItem
	for _, item := range items {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

// Add validates the draft, assigns a fresh id, and appends the item. It
// fails with ErrCapacityExceeded when the catalog already holds MaxItems
// items, leaving the collection untouched.
func (c *Catalog) Add(ctx context.Context, draft model.ItemDraft) (*model.MenuItem, error) {
	price, err := parsePrice(draft.Price)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, model.NewValidationError("Item name is required")
	}

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) >= MaxItems {
		c.logger.Warn().Int("count", len(items)).Msg("catalog capacity reached")
		return nil, model.ErrCapacityExceeded
	}

	item := model.MenuItem{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       price,
		Category:    draft.Category,
	}
	if draft.Image != nil && !draft.Image.IsZero() {
		item.Image = *draft.Image
	} else {
		item.Image = defaultImage(draft.Category)
	}

	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}

	c.logger.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("item added")
	return &item, nil
}

// Update merges the supplied fields over the existing record. An absent
// image keeps the previous one, falling back to a fresh category default
// only when both are missing. Returns ErrItemNotFound for unknown ids.
func (c *Catalog) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.MenuItem, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.logger.Debug().Str("item_id", id).Msg("item not found for update")
		return nil, model.ErrItemNotFound
	}

	item := &items[idx]
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, model.NewValidationError("Item name is required")
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		price, err := parsePrice(*patch.Price)
		if err != nil {
			return nil, err
		}
		item.Price = price
	}
	if patch.Image != nil && !patch.Image.IsZero() {
		item.Image = *patch.Image
	} else if item.Image.IsZero() {
		item.Image = defaultImage(item.Category)
	}

	if err := c.save(ctx, items); err != nil {
		return nil, err
	}

	c.logger.Info().Str("item_id", id).Msg("item updated")
	return item, nil
}

// Delete removes the item if present; deleting an unknown id is a no-op.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return nil
	}

	if err := c.save(ctx, filtered); err != nil {
		return err
	}

	c.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}

// SeedDefaults populates an empty catalog with the starter menu. It never
// overwrites a non-empty catalog.
func (c *Catalog) SeedDefaults(ctx context.Context) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}

	if err := c.save(ctx, defaultItems()); err != nil {
		return err
	}

	c.logger.Info().Int("count", len(defaultItems())).Msg("seeded default menu")
	return nil
}

func (c *Catalog) load(ctx context.Context) ([]model.MenuItem, error) {
	raw, ok, err := c.store.Get(ctx, store.KeyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var items []model.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Error().Err(err).Msg("corrupt item collection")
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (c *Catalog) save(ctx context.Context, items []model.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := c.store.Set(ctx, store.KeyItems, raw); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, model.NewValidationError("Price must be a number")
	}
	if price < 0 {
		return 0, model.NewValidationError("Price must not be negative")
	}
	return price, nil
}
