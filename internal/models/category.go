package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products within one location's menu.
type Category struct {
	UUIDModel
	LocationID uuid.UUID `gorm:"type:uuid;index;not null" json:"location_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
