package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one line of an order with its own preparation
// lifecycle. UnitPrice is a snapshot of the product price at order
// time and never changes afterwards.
type OrderItem struct {
	UUIDModel
	OrderID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"product_id"`
	Quantity      int        `gorm:"not null" json:"quantity"`
	UnitPrice     Money      `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	TotalPrice    Money      `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	StatusID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"status_id"`
	PreparedByID  *uuid.UUID `gorm:"type:uuid" json:"prepared_by_id,omitempty"`
	PreparedAt    *time.Time `json:"prepared_at,omitempty"`
	AssembledByID *uuid.UUID `gorm:"type:uuid" json:"assembled_by_id,omitempty"`
	AssembledAt   *time.Time `json:"assembled_at,omitempty"`
	Version       int64      `gorm:"not null;default:0" json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Product       *Product                 `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Status        *OrderItemStatus         `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	StatusHistory []OrderItemStatusHistory `gorm:"foreignKey:OrderItemID" json:"status_history,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
