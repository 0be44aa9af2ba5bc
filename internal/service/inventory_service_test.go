package service

import (
	"errors"
	"testing"
	"time"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupInventoryServiceTest(t *testing.T) (*InventoryService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, "inventory_service_test")
	svc := NewInventoryService(repository.NewInventoryRepository(db), repository.NewLocationRepository(db))
	return svc, db
}

func createTestSupply(t *testing.T, svc *InventoryService, db *gorm.DB) *models.InventorySupply {
	t.Helper()
	location := createTestLocation(t, db, true)
	manager := createTestStaff(t, db, "manager@test.local", constants.RoleManager)
	salmon, _ := models.NewMoneyFromString("1200.50")
	rice, _ := models.NewMoneyFromString("80.00")
	supply, err := svc.CreateSupply(CreateSupplyInput{
		LocationID:   location.ID,
		ManagerID:    manager.ID,
		SupplierName: "FishMarket LLC",
		SupplyDate:   time.Now(),
		Items: []SupplyItemInput{
			{Name: "Salmon", Quantity: 3, Unit: "kg", UnitCost: salmon},
			{Name: "Rice", Quantity: 10, Unit: "kg", UnitCost: rice},
		},
	})
	if err != nil {
		t.Fatalf("create supply failed: %v", err)
	}
	return supply
}

func TestCreateSupplyComputesCosts(t *testing.T) {
	svc, db := setupInventoryServiceTest(t)
	supply := createTestSupply(t, svc, db)

	// 3 * 1200.50 + 10 * 80.00
	if supply.TotalCost.String() != "4401.50" {
		t.Fatalf("expected total 4401.50, got %s", supply.TotalCost.String())
	}
	if supply.Status != constants.SupplyStatusPending {
		t.Fatalf("expected pending batch, got %s", supply.Status)
	}
	if len(supply.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(supply.Items))
	}
	for _, item := range supply.Items {
		if !item.UnitCost.MulInt(item.Quantity).Equal(item.TotalCost.Decimal) {
			t.Fatalf("line cost mismatch: %+v", item)
		}
	}
}

func TestCreateSupplyValidation(t *testing.T) {
	svc, db := setupInventoryServiceTest(t)
	location := createTestLocation(t, db, true)

	_, err := svc.CreateSupply(CreateSupplyInput{LocationID: location.ID, SupplyDate: time.Now()})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	_, err = svc.CreateSupply(CreateSupplyInput{
		LocationID: location.ID,
		SupplyDate: time.Now(),
		Items:      []SupplyItemInput{{Name: "Salmon", Quantity: -1}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	_, err = svc.CreateSupply(CreateSupplyInput{
		LocationID: uuid.New(),
		SupplyDate: time.Now(),
		Items:      []SupplyItemInput{{Name: "Salmon", Quantity: 1}},
	})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestUpdateSupplyStatus(t *testing.T) {
	svc, db := setupInventoryServiceTest(t)
	supply := createTestSupply(t, svc, db)

	// Same status is a no-op.
	updated, err := svc.UpdateSupplyStatus(supply.ID, constants.SupplyStatusPending)
	if err != nil {
		t.Fatalf("no-op status update failed: %v", err)
	}
	if updated.Status != constants.SupplyStatusPending {
		t.Fatalf("expected pending, got %s", updated.Status)
	}

	updated, err = svc.UpdateSupplyStatus(supply.ID, constants.SupplyStatusDelivered)
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if updated.Status != constants.SupplyStatusDelivered {
		t.Fatalf("expected delivered, got %s", updated.Status)
	}

	// Delivered is terminal.
	_, err = svc.UpdateSupplyStatus(supply.ID, constants.SupplyStatusCancelled)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition from delivered, got %v", err)
	}

	_, err = svc.UpdateSupplyStatus(supply.ID, "lost")
	if !errors.Is(err, ErrStatusUnknown) {
		t.Fatalf("expected ErrStatusUnknown, got %v", err)
	}

	_, err = svc.UpdateSupplyStatus(uuid.New(), constants.SupplyStatusDelivered)
	if !errors.Is(err, ErrSupplyNotFound) {
		t.Fatalf("expected ErrSupplyNotFound, got %v", err)
	}
}

func TestListSuppliesFilters(t *testing.T) {
	svc, db := setupInventoryServiceTest(t)
	supply := createTestSupply(t, svc, db)
	if _, err := svc.UpdateSupplyStatus(supply.ID, constants.SupplyStatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	supplies, total, err := svc.ListSupplies(repository.SupplyListFilter{LocationID: supply.LocationID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(supplies) != 1 {
		t.Fatalf("expected 1 supply, got %d", total)
	}

	_, total, err = svc.ListSupplies(repository.SupplyListFilter{Status: constants.SupplyStatusPending})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no pending supplies, got %d", total)
	}
}
