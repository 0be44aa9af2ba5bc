package models

// OrderStatus is a row of the order status vocabulary. The set of
// names is closed (see constants); rows are seeded at startup and
// resolved into an in-memory registry so transitions never look up
// statuses by string at request time.
type OrderStatus struct {
	UUIDModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name"`
	Description string `gorm:"type:varchar(300)" json:"description,omitempty"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
}

// TableName sets the table name.
func (OrderStatus) TableName() string {
	return "order_statuses"
}

// OrderItemStatus is a row of the item status vocabulary, parallel to
// OrderStatus but distinct.
type OrderItemStatus struct {
	UUIDModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"type:varchar(100);not null" json:"display_name"`
	Description string `gorm:"type:varchar(300)" json:"description,omitempty"`
	SortOrder   int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
}

// TableName sets the table name.
func (OrderItemStatus) TableName() string {
	return "order_item_statuses"
}
