package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/VPodolski/MakiMora/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Location{},
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.OrderStatus{},
		&models.OrderItemStatus{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.OrderItemStatusHistory{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewOrderRepository(db), db
}

func seedRepositoryOrder(t *testing.T, repo *GormOrderRepository, db *gorm.DB) *models.Order {
	t.Helper()
	location := &models.Location{Name: "L", Address: "A", IsActive: true}
	if err := db.Create(location).Error; err != nil {
		t.Fatalf("create location failed: %v", err)
	}
	status := &models.OrderStatus{Name: "pending", DisplayName: "Pending", IsActive: true}
	if err := db.Create(status).Error; err != nil {
		t.Fatalf("create status failed: %v", err)
	}
	itemStatus := &models.OrderItemStatus{Name: "pending", DisplayName: "Pending", IsActive: true}
	if err := db.Create(itemStatus).Error; err != nil {
		t.Fatalf("create item status failed: %v", err)
	}

	order := &models.Order{
		OrderNumber:   "ORD20260101120000100",
		CustomerName:  "Ivan",
		CustomerPhone: "+79990000000",
		Address:       "Lenina 5",
		LocationID:    location.ID,
		StatusID:      status.ID,
	}
	items := []models.OrderItem{
		{ProductID: uuid.New(), Quantity: 1, StatusID: itemStatus.ID},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestUpdateGuardedBumpsVersion(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := seedRepositoryOrder(t, repo, db)

	affected, err := repo.UpdateGuarded(order.ID, 0, map[string]interface{}{"comment": "first"})
	if err != nil {
		t.Fatalf("guarded update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	reloaded, err := repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Version != 1 {
		t.Fatalf("expected version 1, got %d", reloaded.Version)
	}
	if reloaded.Comment != "first" {
		t.Fatalf("update not applied: %s", reloaded.Comment)
	}

	// The old version no longer matches.
	affected, err = repo.UpdateGuarded(order.ID, 0, map[string]interface{}{"comment": "second"})
	if err != nil {
		t.Fatalf("guarded update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("stale version must touch nothing, got %d", affected)
	}

	reloaded, err = repo.GetByID(order.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Comment != "first" {
		t.Fatalf("stale update leaked through: %s", reloaded.Comment)
	}
}

func TestUpdateItemGuarded(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := seedRepositoryOrder(t, repo, db)

	items, err := repo.ListItems(order.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	affected, err := repo.UpdateItemGuarded(items[0].ID, 99, map[string]interface{}{"quantity": 5})
	if err != nil {
		t.Fatalf("guarded item update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("wrong version must touch nothing, got %d", affected)
	}

	affected, err = repo.UpdateItemGuarded(items[0].ID, 0, map[string]interface{}{"quantity": 5})
	if err != nil {
		t.Fatalf("guarded item update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo, _ := setupOrderRepositoryTest(t)

	order, err := repo.GetByID(uuid.New())
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil for missing order")
	}

	order, err = repo.GetByNumber("ORD00000000000000000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil for missing number")
	}
}

func TestGetByNumberLoadsAggregate(t *testing.T) {
	repo, db := setupOrderRepositoryTest(t)
	order := seedRepositoryOrder(t, repo, db)

	loaded, err := repo.GetByNumber(order.OrderNumber)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if loaded == nil || loaded.ID != order.ID {
		t.Fatalf("aggregate not loaded")
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("items not preloaded, got %d", len(loaded.Items))
	}
	if loaded.Status == nil || loaded.Status.Name != "pending" {
		t.Fatalf("status not preloaded: %+v", loaded.Status)
	}
}
