package models

import (
	"time"

	"github.com/google/uuid"
)

// CourierEarning is one ledger row of courier compensation: the
// delivery fee accrued on completion, or a manually recorded bonus or
// penalty.
type CourierEarning struct {
	UUIDModel
	CourierID   uuid.UUID `gorm:"type:uuid;index;not null" json:"courier_id"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	Amount      Money     `gorm:"type:decimal(10,2);not null" json:"amount"`
	EarningType string    `gorm:"type:varchar(20);not null" json:"earning_type"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	CreatedAt   time.Time `json:"created_at"`

	Courier *User  `gorm:"foreignKey:CourierID" json:"courier,omitempty"`
	Order   *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName sets the table name.
func (CourierEarning) TableName() string {
	return "courier_earnings"
}
