package service

import (
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// CategoryService manages menu categories.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

// NewCategoryService wires the category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, locationRepo repository.LocationRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, locationRepo: locationRepo}
}

// CategoryInput carries category fields.
type CategoryInput struct {
	LocationID uuid.UUID
	Name       string
	SortOrder  int
	IsActive   *bool
}

// CreateCategory adds a category to a location's menu.
func (s *CategoryService) CreateCategory(input CategoryInput) (*models.Category, error) {
	location, err := s.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	category := &models.Category{
		LocationID: input.LocationID,
		Name:       input.Name,
		SortOrder:  input.SortOrder,
		IsActive:   true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory loads one category.
func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// ListCategories returns a location's categories.
func (s *CategoryService) ListCategories(locationID uuid.UUID, onlyActive bool) ([]models.Category, error) {
	return s.categoryRepo.ListByLocation(locationID, onlyActive)
}

// UpdateCategory applies partial updates.
func (s *CategoryService) UpdateCategory(id uuid.UUID, input CategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		category.Name = input.Name
	}
	if input.SortOrder != 0 {
		category.SortOrder = input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(id)
}
