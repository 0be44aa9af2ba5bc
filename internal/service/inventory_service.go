package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// InventoryService manages supply batches for a location.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	locationRepo  repository.LocationRepository
}

// NewInventoryService wires the inventory service.
func NewInventoryService(inventoryRepo repository.InventoryRepository, locationRepo repository.LocationRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo, locationRepo: locationRepo}
}

// SupplyItemInput is one requested supply line.
type SupplyItemInput struct {
	Name     string
	Quantity int
	Unit     string
	UnitCost models.Money
}

// CreateSupplyInput is the supply creation request.
type CreateSupplyInput struct {
	LocationID   uuid.UUID
	ManagerID    uuid.UUID
	SupplierName string
	SupplyDate   time.Time
	ExpectedDate *time.Time
	Comment      string
	Items        []SupplyItemInput
}

// CreateSupply records a supply batch with computed line and batch
// costs in one transaction.
func (s *InventoryService) CreateSupply(input CreateSupplyInput) (*models.InventorySupply, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	location, err := s.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	total := models.NewMoneyFromDecimal(decimal.Zero)
	items := make([]models.InventorySupplyItem, 0, len(input.Items))
	for _, line := range input.Items {
		lineTotal := line.UnitCost.MulInt(line.Quantity)
		total = total.Add(lineTotal)
		items = append(items, models.InventorySupplyItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
			UnitCost:  line.UnitCost,
			TotalCost: lineTotal,
		})
	}

	supply := &models.InventorySupply{
		LocationID:   input.LocationID,
		ManagerID:    input.ManagerID,
		SupplierName: input.SupplierName,
		SupplyDate:   input.SupplyDate,
		ExpectedDate: input.ExpectedDate,
		Status:       constants.SupplyStatusPending,
		TotalCost:    total,
		Comment:      input.Comment,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return s.inventoryRepo.WithTx(tx).Create(supply, items)
	})
	if err != nil {
		return nil, err
	}
	return s.inventoryRepo.GetByID(supply.ID)
}

// GetSupply loads one supply batch.
func (s *InventoryService) GetSupply(id uuid.UUID) (*models.InventorySupply, error) {
	supply, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, ErrSupplyNotFound
	}
	return supply, nil
}

// ListSupplies returns a filtered page of supply batches.
func (s *InventoryService) ListSupplies(filter repository.SupplyListFilter) ([]models.InventorySupply, int64, error) {
	return s.inventoryRepo.List(filter)
}

// UpdateSupplyStatus moves a batch between pending, delivered and
// cancelled. Terminal batches stay put.
func (s *InventoryService) UpdateSupplyStatus(id uuid.UUID, status string) (*models.InventorySupply, error) {
	switch status {
	case constants.SupplyStatusPending, constants.SupplyStatusDelivered, constants.SupplyStatusCancelled:
	default:
		return nil, ErrStatusUnknown
	}

	supply, err := s.GetSupply(id)
	if err != nil {
		return nil, err
	}
	if supply.Status == status {
		return supply, nil
	}
	if supply.Status != constants.SupplyStatusPending {
		return nil, &TransitionError{Entity: "supply", From: supply.Status, To: status}
	}
	if err := s.inventoryRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.GetSupply(id)
}
