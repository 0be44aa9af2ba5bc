package repository

import (
	"time"

	"github.com/google/uuid"
)

// OrderListFilter filters the staff order listing.
type OrderListFilter struct {
	Page        int
	PageSize    int
	LocationID  uuid.UUID
	StatusID    uuid.UUID
	CourierID   uuid.UUID
	OrderNumber string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ProductListFilter filters the product listing.
type ProductListFilter struct {
	Page          int
	PageSize      int
	LocationID    uuid.UUID
	CategoryID    uuid.UUID
	Search        string
	OnlyOrderable bool
	WithCategory  bool
}

// UserListFilter filters the staff account listing.
type UserListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	Role       string
	LocationID uuid.UUID
	OnlyActive bool
}

// SupplyListFilter filters inventory supply listings.
type SupplyListFilter struct {
	Page       int
	PageSize   int
	LocationID uuid.UUID
	Status     string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// EarningListFilter filters courier earning listings.
type EarningListFilter struct {
	Page        int
	PageSize    int
	CourierID   uuid.UUID
	EarningType string
	DateFrom    *time.Time
	DateTo      *time.Time
}
