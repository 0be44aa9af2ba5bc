package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// Cache is the small JSON cache surface the services need. A nil
// Cache disables caching without changing behavior.
type Cache interface {
	GetJSON(key string, dest interface{}) (bool, error)
	SetJSON(key string, value interface{}, ttl time.Duration) error
	Delete(key string) error
}

// MenuCategory is one storefront menu section.
type MenuCategory struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// ProductService manages menu items and the cached storefront menu.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	cache        Cache
	menuTTL      time.Duration
}

// NewProductService wires the product service. cache may be nil.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	cache Cache,
	menuTTLSeconds int,
) *ProductService {
	if menuTTLSeconds <= 0 {
		menuTTLSeconds = 60
	}
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		cache:        cache,
		menuTTL:      time.Duration(menuTTLSeconds) * time.Second,
	}
}

// ProductInput carries product fields.
type ProductInput struct {
	LocationID      uuid.UUID
	CategoryID      uuid.UUID
	Name            string
	Description     string
	Price           models.Money
	ImageURL        string
	IsAvailable     *bool
	PreparationTime int
}

// CreateProduct adds a menu item.
func (s *ProductService) CreateProduct(input ProductInput) (*models.Product, error) {
	location, err := s.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.LocationID != input.LocationID {
		return nil, ErrCategoryNotFound
	}

	product := &models.Product{
		LocationID:      input.LocationID,
		CategoryID:      input.CategoryID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
		IsAvailable:     true,
		PreparationTime: input.PreparationTime,
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateMenu(input.LocationID)
	return product, nil
}

// GetProduct loads one menu item.
func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListProducts returns a filtered page of menu items.
func (s *ProductService) ListProducts(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// UpdateProduct applies partial updates and invalidates the menu.
func (s *ProductService) UpdateProduct(id uuid.UUID, input ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if !input.Price.IsZero() {
		product.Price = input.Price
	}
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.PreparationTime > 0 {
		product.PreparationTime = input.PreparationTime
	}
	if input.CategoryID != uuid.Nil {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.LocationID != product.LocationID {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = input.CategoryID
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateMenu(product.LocationID)
	return product, nil
}

// SetStopList toggles a product's temporary unavailability.
func (s *ProductService) SetStopList(id uuid.UUID, onStopList bool) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.SetStopList(id, onStopList); err != nil {
		return nil, err
	}
	s.invalidateMenu(product.LocationID)
	return s.GetProduct(id)
}

// DeleteProduct removes a menu item.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateMenu(product.LocationID)
	return nil
}

// Menu assembles the storefront menu for a location: active
// categories with orderable products, served from cache when fresh.
func (s *ProductService) Menu(locationID uuid.UUID) ([]MenuCategory, error) {
	location, err := s.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.IsActive {
		return nil, ErrLocationNotFound
	}

	key := menuCacheKey(locationID)
	if s.cache != nil {
		var cached []MenuCategory
		if ok, err := s.cache.GetJSON(key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.ListByLocation(locationID, true)
	if err != nil {
		return nil, err
	}
	menu := make([]MenuCategory, 0, len(categories))
	for _, category := range categories {
		products, _, err := s.productRepo.List(repository.ProductListFilter{
			LocationID:    locationID,
			CategoryID:    category.ID,
			OnlyOrderable: true,
		})
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			continue
		}
		menu = append(menu, MenuCategory{Category: category, Products: products})
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(key, menu, s.menuTTL); err != nil {
			logger.Warnw("menu_cache_set_failed", "location_id", locationID, "error", err)
		}
	}
	return menu, nil
}

func (s *ProductService) invalidateMenu(locationID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(menuCacheKey(locationID)); err != nil {
		logger.Warnw("menu_cache_invalidate_failed", "location_id", locationID, "error", err)
	}
}

func menuCacheKey(locationID uuid.UUID) string {
	return fmt.Sprintf("menu:%s", locationID)
}
