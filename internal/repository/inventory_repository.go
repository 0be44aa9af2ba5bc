package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// InventoryRepository is the supply ledger data access interface.
type InventoryRepository interface {
	Create(supply *models.InventorySupply, items []models.InventorySupplyItem) error
	GetByID(id uuid.UUID) (*models.InventorySupply, error)
	List(filter SupplyListFilter) ([]models.InventorySupply, int64, error)
	UpdateStatus(id uuid.UUID, status string) error
	WithTx(tx *gorm.DB) *GormInventoryRepository
}

// GormInventoryRepository is the GORM implementation.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates the inventory repository.
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// WithTx rebinds the repository to a transaction.
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) *GormInventoryRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryRepository{db: tx}
}

// Create inserts a supply batch with its lines.
func (r *GormInventoryRepository) Create(supply *models.InventorySupply, items []models.InventorySupplyItem) error {
	if err := r.db.Create(supply).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].SupplyID = supply.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID loads a supply with lines, nil when absent.
func (r *GormInventoryRepository) GetByID(id uuid.UUID) (*models.InventorySupply, error) {
	var supply models.InventorySupply
	if err := r.db.Preload("Items").First(&supply, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supply, nil
}

// List returns a filtered page of supplies.
func (r *GormInventoryRepository) List(filter SupplyListFilter) ([]models.InventorySupply, int64, error) {
	query := r.db.Model(&models.InventorySupply{})

	if filter.LocationID != uuid.Nil {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("supply_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("supply_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var supplies []models.InventorySupply
	if err := query.Preload("Items").Order("supply_date desc").Find(&supplies).Error; err != nil {
		return nil, 0, err
	}
	return supplies, total, nil
}

// UpdateStatus moves a supply between pending/delivered/cancelled.
func (r *GormInventoryRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.InventorySupply{}).Where("id = ?", id).
		Update("status", status).Error
}
