package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers map these to business codes so clients can
// branch programmatically instead of matching message text.
var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrLocationInactive   = errors.New("location is not active")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not orderable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderItemNotFound  = errors.New("order item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrSupplyNotFound     = errors.New("inventory supply not found")
	ErrStatusUnknown      = errors.New("unknown status")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrVersionConflict    = errors.New("version conflict, reload and retry")
	ErrNoCourierAssigned  = errors.New("order has no assigned courier")
	ErrCourierMismatch    = errors.New("order is assigned to another courier")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrRoleUnknown        = errors.New("unknown role")
)

// TransitionError reports an illegal transition with both states so
// the caller sees exactly what was refused. Matches
// ErrIllegalTransition under errors.Is.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

func newOrderTransitionError(from, to string) error {
	return &TransitionError{Entity: "order", From: from, To: to}
}

func newItemTransitionError(from, to string) error {
	return &TransitionError{Entity: "order item", From: from, To: to}
}
