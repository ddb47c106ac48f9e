// Package report aggregates placed orders over a selected time window. All
// functions are read-only over the slices they receive.
package report

import (
	"sort"
	"time"

	"resto-pos/internal/model"
)

// WindowKind selects one of the supported report windows.
type WindowKind string

const (
	WindowAll        WindowKind = "all"
	WindowToday      WindowKind = "today"
	WindowLast7Days  WindowKind = "last-7-days"
	WindowLast30Days WindowKind = "last-30-days"
	WindowCustom     WindowKind = "custom"
)

// Window is a time range for filtering orders. From and To are only used by
// the custom kind and are interpreted as whole days.
type Window struct {
	Kind WindowKind
	From time.Time
	To   time.Time
}

// CustomRange builds a custom window spanning the full from day through the
// full to day.
func CustomRange(from, to time.Time) Window {
	return Window{Kind: WindowCustom, From: from, To: to}
}

// Totals summarises a set of orders.
type Totals struct {
	TotalSales        float64 `json:"totalSales"`
	OrderCount        int     `json:"orderCount"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// ItemSales is the per-item aggregation row.
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// FilterByWindow returns the orders whose timestamp falls inside the window,
// evaluated against now. Rolling windows are anchored at local midnight.
func FilterByWindow(orders []model.Order, w Window, now time.Time) []model.Order {
	if w.Kind == WindowAll {
		return orders
	}

	var from, to time.Time
	switch w.Kind {
	case WindowToday:
		from, to = midnight(now), now
	case WindowLast7Days:
		from, to = midnight(now).AddDate(0, 0, -7), now
	case WindowLast30Days:
		from, to = midnight(now).AddDate(0, 0, -30), now
	case WindowCustom:
		// Inclusive of the full from day through the full to day.
		from = midnight(w.From)
		to = midnight(w.To).AddDate(0, 0, 1).Add(-time.Millisecond)
	default:
		return orders
	}

	var filtered []model.Order
	for _, order := range orders {
		if order.Timestamp.Before(from) || order.Timestamp.After(to) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

// AggregateTotals computes sales totals over the given orders. The average
// is zero when there are no orders.
func AggregateTotals(orders []model.Order) Totals {
	t := Totals{OrderCount: len(orders)}
	for _, order := range orders {
		t.TotalSales += order.Total
	}
	if t.OrderCount > 0 {
		t.AverageOrderValue = t.TotalSales / float64(t.OrderCount)
	}
	return t
}

// AggregateByItem groups line items by item identity across all orders,
// summing quantity and revenue, sorted by revenue descending.
func AggregateByItem(orders []model.Order) []ItemSales {
	totals := make(map[string]*ItemSales)
	var keys []string

	for _, order := range orders {
		for _, line := range order.Items {
			row, ok := totals[line.ItemID]
			if !ok {
				row = &ItemSales{Name: line.Name}
				totals[line.ItemID] = row
				keys = append(keys, line.ItemID)
			}
			row.Quantity += line.Quantity
			row.Revenue += line.Subtotal()
		}
	}

	rows := make([]ItemSales, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, *totals[key])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
