// Package store provides the key/value persistence layer. Collections are
// stored as whole JSON blobs under well-known keys; every Get/Set/Delete is
// atomic at single-key granularity.
package store

import "context"

// Durable store keys.
const (
	KeyItems    = "restaurant_items"
	KeyOrders   = "restaurant_orders"
	KeyLoggedIn = "restaurant_logged_in"
)

// Volatile (session-scoped) store keys.
const (
	KeyCustomerCart   = "cart"
	KeyStaffCart      = "newOrderCart"
	KeyCurrentOrder   = "currentOrder"
	KeyPaymentOrderID = "paymentOrderId"
)

// Store is a scoped key/value byte store.
type Store interface {
	// Get retrieves the value for key. The boolean reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases underlying resources.
	Close() error
}
