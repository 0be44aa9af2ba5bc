package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer purchase at one location, tracked through the
// status lifecycle. Version guards concurrent transitions.
type Order struct {
	UUIDModel
	OrderNumber   string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	CustomerName  string     `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone string     `gorm:"type:varchar(20);not null" json:"customer_phone"`
	Address       string     `gorm:"type:varchar(300);not null" json:"address"`
	LocationID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"location_id"`
	StatusID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"status_id"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index" json:"courier_id,omitempty"`
	AssemblerID   *uuid.UUID `gorm:"type:uuid;index" json:"assembler_id,omitempty"`
	TotalAmount   Money      `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	DeliveryFee   Money      `gorm:"type:decimal(10,2);not null;default:0" json:"delivery_fee"`
	Comment       string     `gorm:"type:varchar(500)" json:"comment,omitempty"`
	Version       int64      `gorm:"not null;default:0" json:"version"`
	DeliveryTime  *time.Time `json:"delivery_time,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"index" json:"updated_at"`

	Location      *Location            `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Status        *OrderStatus         `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Courier       *User                `gorm:"foreignKey:CourierID" json:"courier,omitempty"`
	Assembler     *User                `gorm:"foreignKey:AssemblerID" json:"assembler,omitempty"`
	Items         []OrderItem          `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID" json:"status_history,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
