package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/models"
)

// LocationRepository is the outlet data access interface.
type LocationRepository interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	ListActive() ([]models.Location, error)
	ListAll() ([]models.Location, error)
	Update(location *models.Location) error
	Deactivate(id uuid.UUID) error
	GetByIDs(ids []uuid.UUID) ([]models.Location, error)
}

// GormLocationRepository is the GORM implementation.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates the location repository.
func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Create inserts a location.
func (r *GormLocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID loads a location, nil when absent.
func (r *GormLocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := r.db.First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

// ListActive returns active locations ordered by name.
func (r *GormLocationRepository) ListActive() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Where("is_active = ?", true).Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// ListAll returns every location including inactive ones.
func (r *GormLocationRepository) ListAll() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// Update saves mutable location fields.
func (r *GormLocationRepository) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

// Deactivate disables an outlet without removing history.
func (r *GormLocationRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Location{}).Where("id = ?", id).
		Update("is_active", false).Error
}

// GetByIDs resolves location rows for the given ids.
func (r *GormLocationRepository) GetByIDs(ids []uuid.UUID) ([]models.Location, error) {
	var locations []models.Location
	if len(ids) == 0 {
		return locations, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
