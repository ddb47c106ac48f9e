package model

// Standard error codes surfaced to the presentation layer.
const (
	ErrCodeItemNotFound      = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeCapacityExceeded  = "CAPACITY_EXCEEDED"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeIllegalTransition = "ILLEGAL_TRANSITION"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrItemNotFound      = NewDomainError(ErrCodeItemNotFound, "Menu item not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCapacityExceeded  = NewDomainError(ErrCodeCapacityExceeded, "Maximum limit of 1000 items reached. Please delete some items before adding new ones.")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrIllegalTransition = NewDomainError(ErrCodeIllegalTransition, "Order status transition not allowed")
)

// NewValidationError reports a missing or malformed field on a draft.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidationFailed, message)
}
