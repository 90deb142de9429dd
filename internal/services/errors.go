package services

import (
	"errors"
)

// Sentinel errors for the API layer to translate into HTTP statuses.
// Services wrap them with fmt.Errorf("%w: ...") when extra context helps.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")

	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken       = errors.New("email already registered")
	ErrEmailReserved    = errors.New("email reserved for the administrator")
	ErrAdminProtected   = errors.New("the administrator account cannot be deleted")
	ErrCategoryExists   = errors.New("a category with this name already exists")
	ErrCategoryHasItems = errors.New("category still has items")
	ErrItemReferenced   = errors.New("item is referenced by existing orders")

	ErrEmptyOrder        = errors.New("order must have at least one line")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidStock      = errors.New("stock must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotPending   = errors.New("order is not pending")
	ErrInvalidTransition = errors.New("invalid status transition")
)
