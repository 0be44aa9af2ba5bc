package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDModel is the shared primary key block. IDs are generated
// client-side so entities are addressable before the insert commits.
type UUIDModel struct {
	ID uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
}

// BeforeCreate fills the ID if the caller did not set one.
func (m *UUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
