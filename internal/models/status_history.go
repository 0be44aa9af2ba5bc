package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusHistory is the append-only audit trail of order
// transitions. Rows are written in the same transaction as the status
// change and never mutated afterwards.
type OrderStatusHistory struct {
	UUIDModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"order_id"`
	StatusID    uuid.UUID  `gorm:"type:uuid;not null" json:"status_id"`
	ChangedByID *uuid.UUID `gorm:"type:uuid" json:"changed_by_id,omitempty"`
	ChangedAt   time.Time  `gorm:"index;not null" json:"changed_at"`
	Note        string     `gorm:"type:varchar(500)" json:"note,omitempty"`

	Status *OrderStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

// TableName sets the table name.
func (OrderStatusHistory) TableName() string {
	return "order_status_histories"
}

// OrderItemStatusHistory mirrors OrderStatusHistory at item
// granularity.
type OrderItemStatusHistory struct {
	UUIDModel
	OrderItemID uuid.UUID  `gorm:"type:uuid;index;not null" json:"order_item_id"`
	StatusID    uuid.UUID  `gorm:"type:uuid;not null" json:"status_id"`
	ChangedByID *uuid.UUID `gorm:"type:uuid" json:"changed_by_id,omitempty"`
	ChangedAt   time.Time  `gorm:"index;not null" json:"changed_at"`
	Note        string     `gorm:"type:varchar(500)" json:"note,omitempty"`

	Status *OrderItemStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

// TableName sets the table name.
func (OrderItemStatusHistory) TableName() string {
	return "order_item_status_histories"
}
