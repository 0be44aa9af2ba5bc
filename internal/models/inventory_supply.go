package models

import (
	"time"

	"github.com/google/uuid"
)

// InventorySupply is a purchasing record for one location: a batch of
// goods ordered from a supplier, tracked pending/delivered/cancelled.
type InventorySupply struct {
	UUIDModel
	LocationID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"location_id"`
	ManagerID    uuid.UUID  `gorm:"type:uuid;not null" json:"manager_id"`
	SupplierName string     `gorm:"type:varchar(150);not null" json:"supplier_name"`
	SupplyDate   time.Time  `gorm:"index;not null" json:"supply_date"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	Status       string     `gorm:"type:varchar(20);index;not null" json:"status"`
	TotalCost    Money      `gorm:"type:decimal(10,2);not null;default:0" json:"total_cost"`
	Comment      string     `gorm:"type:varchar(500)" json:"comment,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Items []InventorySupplyItem `gorm:"foreignKey:SupplyID" json:"items,omitempty"`
}

// TableName sets the table name.
func (InventorySupply) TableName() string {
	return "inventory_supplies"
}

// InventorySupplyItem is one line of a supply batch.
type InventorySupplyItem struct {
	UUIDModel
	SupplyID  uuid.UUID `gorm:"type:uuid;index;not null" json:"supply_id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"type:varchar(20);not null" json:"unit"`
	UnitCost  Money     `gorm:"type:decimal(10,2);not null;default:0" json:"unit_cost"`
	TotalCost Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_cost"`
}

// TableName sets the table name.
func (InventorySupplyItem) TableName() string {
	return "inventory_supply_items"
}
