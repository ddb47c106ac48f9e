package model

import "time"

// Status is an order's position in the kitchen workflow.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known kitchen status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks whether payment was confirmed, independently of the
// kitchen workflow.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// CartLine is one (item, quantity) selection. Name and price are snapshots
// taken from the catalog when the line was added; later catalog edits do not
// flow back into existing lines.
type CartLine struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price multiplied by quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order is a placed order. Items and total are frozen at placement; only the
// status fields mutate afterwards.
type Order struct {
	ID            string        `json:"id"`
	Items         []CartLine    `json:"items"`
	Total         float64       `json:"total"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
}
