package models

import "time"

// Location is a physical outlet. It scopes the catalog, staff
// assignments, orders and inventory supplies.
type Location struct {
	UUIDModel
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Address   string    `gorm:"type:varchar(300);not null" json:"address"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Location) TableName() string {
	return "locations"
}
