package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a menu item at one location. Orders snapshot Price at
// creation time; IsOnStopList hides an item temporarily without
// deactivating it.
type Product struct {
	UUIDModel
	LocationID      uuid.UUID `gorm:"type:uuid;index;not null" json:"location_id"`
	CategoryID      uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`
	Name            string    `gorm:"type:varchar(150);not null" json:"name"`
	Description     string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	Price           Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	ImageURL        string    `gorm:"type:varchar(300)" json:"image_url,omitempty"`
	IsAvailable     bool      `gorm:"not null" json:"is_available"`
	IsOnStopList    bool      `gorm:"not null;default:false" json:"is_on_stop_list"`
	PreparationTime int       `gorm:"not null;default:0" json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// Orderable reports whether the product can currently be ordered.
func (p *Product) Orderable() bool {
	return p.IsAvailable && !p.IsOnStopList
}
