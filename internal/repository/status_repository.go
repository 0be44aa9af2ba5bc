package repository

import (
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// StatusRepository loads the status vocabularies. Used once at
// startup to build the in-memory status registry.
type StatusRepository interface {
	ListOrderStatuses() ([]models.OrderStatus, error)
	ListItemStatuses() ([]models.OrderItemStatus, error)
}

// GormStatusRepository is the GORM implementation.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates the status repository.
func NewStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// ListOrderStatuses returns all active order statuses in sort order.
func (r *GormStatusRepository) ListOrderStatuses() ([]models.OrderStatus, error) {
	var statuses []models.OrderStatus
	if err := r.db.Where("is_active = ?", true).Order("sort_order asc").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// ListItemStatuses returns all active item statuses in sort order.
func (r *GormStatusRepository) ListItemStatuses() ([]models.OrderItemStatus, error) {
	var statuses []models.OrderItemStatus
	if err := r.db.Where("is_active = ?", true).Order("sort_order asc").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
