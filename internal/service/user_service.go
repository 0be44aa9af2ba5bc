package service

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// UserService manages staff accounts and their role and location
// assignments.
type UserService struct {
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

// NewUserService wires the user service.
func NewUserService(userRepo repository.UserRepository, locationRepo repository.LocationRepository) *UserService {
	return &UserService{userRepo: userRepo, locationRepo: locationRepo}
}

// CreateUserInput is the staff account creation request.
type CreateUserInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Roles       []string
	LocationIDs []uuid.UUID
}

// CreateUser creates a staff account with hashed password and
// resolved role and location assignments.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	roles, err := s.resolveRoles(input.Roles)
	if err != nil {
		return nil, err
	}
	locations, err := s.resolveLocations(input.LocationIDs)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		IsActive:     true,
		Roles:        roles,
		Locations:    locations,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(user.ID)
}

// UpdateUserInput carries mutable staff account fields. Nil slices
// leave the corresponding assignment untouched.
type UpdateUserInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	IsActive    *bool
	Roles       []string
	LocationIDs []uuid.UUID
}

// UpdateUser applies partial updates to a staff account.
func (s *UserService) UpdateUser(id uuid.UUID, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	if input.Roles != nil {
		roles, err := s.resolveRoles(input.Roles)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.ReplaceRoles(user, roles); err != nil {
			return nil, err
		}
	}
	if input.LocationIDs != nil {
		locations, err := s.resolveLocations(input.LocationIDs)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.ReplaceLocations(user, locations); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(id)
}

// GetUser loads one staff account.
func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns a filtered page of staff accounts.
func (s *UserService) ListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// DeactivateUser disables an account, keeping its history.
func (s *UserService) DeactivateUser(id uuid.UUID) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Deactivate(id)
}

func (s *UserService) resolveRoles(names []string) ([]models.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles, err := s.userRepo.GetRolesByNames(names)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, ErrRoleUnknown
	}
	return roles, nil
}

func (s *UserService) resolveLocations(ids []uuid.UUID) ([]models.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	locations, err := s.locationRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(locations) != len(ids) {
		return nil, ErrLocationNotFound
	}
	return locations, nil
}
