package service

import (
	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// LocationService manages outlets.
type LocationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService wires the location service.
func NewLocationService(locationRepo repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

// LocationInput carries outlet fields.
type LocationInput struct {
	Name    string
	Address string
	Phone   string
}

// CreateLocation opens a new outlet.
func (s *LocationService) CreateLocation(input LocationInput) (*models.Location, error) {
	location := &models.Location{
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: true,
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetLocation loads one outlet.
func (s *LocationService) GetLocation(id uuid.UUID) (*models.Location, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

// ListActiveLocations returns outlets visible to customers.
func (s *LocationService) ListActiveLocations() ([]models.Location, error) {
	return s.locationRepo.ListActive()
}

// ListAllLocations returns every outlet for the staff view.
func (s *LocationService) ListAllLocations() ([]models.Location, error) {
	return s.locationRepo.ListAll()
}

// UpdateLocation applies partial updates.
func (s *LocationService) UpdateLocation(id uuid.UUID, input LocationInput) (*models.Location, error) {
	location, err := s.GetLocation(id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		location.Name = input.Name
	}
	if input.Address != "" {
		location.Address = input.Address
	}
	if input.Phone != "" {
		location.Phone = input.Phone
	}
	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeactivateLocation hides an outlet from customers, keeping its
// history.
func (s *LocationService) DeactivateLocation(id uuid.UUID) error {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrLocationNotFound
	}
	return s.locationRepo.Deactivate(id)
}
