package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
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
		&models.InventorySupply{},
		&models.InventorySupplyItem{},
		&models.CourierEarning{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	if err := models.SeedLookups(); err != nil {
		t.Fatalf("seed lookups failed: %v", err)
	}
	return db
}

func buildTestRegistry(t *testing.T, db *gorm.DB) *StatusRegistry {
	t.Helper()
	statuses, err := BuildStatusRegistry(repository.NewStatusRepository(db))
	if err != nil {
		t.Fatalf("build status registry failed: %v", err)
	}
	return statuses
}

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t, "order_service_test")
	statuses := buildTestRegistry(t, db)
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewLocationRepository(db),
		repository.NewUserRepository(db),
		statuses,
		nil,
		nil,
		0,
	)
	return svc, db
}

func createTestLocation(t *testing.T, db *gorm.DB, active bool) *models.Location {
	t.Helper()
	location := &models.Location{Name: "Test Location", Address: "Test Street 1", IsActive: active}
	if err := db.Create(location).Error; err != nil {
		t.Fatalf("create location failed: %v", err)
	}
	return location
}

func createTestProduct(t *testing.T, db *gorm.DB, locationID uuid.UUID, name, price string) *models.Product {
	t.Helper()
	category := &models.Category{LocationID: locationID, Name: "Category " + name, IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		LocationID:  locationID,
		CategoryID:  category.ID,
		Name:        name,
		Price:       amount,
		IsAvailable: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createTestStaff(t *testing.T, db *gorm.DB, email string, roleNames ...string) *models.User {
	t.Helper()
	var roles []models.Role
	if err := db.Where("name IN ?", roleNames).Find(&roles).Error; err != nil {
		t.Fatalf("load roles failed: %v", err)
	}
	if len(roles) != len(roleNames) {
		t.Fatalf("missing seeded roles for %v", roleNames)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "Staff",
		IsActive:     true,
		Roles:        roles,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestOrder(t *testing.T, svc *OrderService, db *gorm.DB) (*models.Order, *models.Location) {
	t.Helper()
	location := createTestLocation(t, db, true)
	roll := createTestProduct(t, db, location.ID, "Philadelphia", "250.00")
	tea := createTestProduct(t, db, location.ID, "Green Tea", "90.00")
	fee, _ := models.NewMoneyFromString("150.00")
	order, err := svc.CreateOrder(CreateOrderInput{
		CustomerName:  "Ivan Petrov",
		CustomerPhone: "+79991234567",
		Address:       "Lenina 5",
		LocationID:    location.ID,
		DeliveryFee:   fee,
		Items: []CreateOrderItemInput{
			{ProductID: roll.ID, Quantity: 2},
			{ProductID: tea.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order, location
}

func advanceOrder(t *testing.T, svc *OrderService, actor Actor, orderID uuid.UUID, targets ...string) *models.Order {
	t.Helper()
	var order *models.Order
	var err error
	for _, target := range targets {
		order, err = svc.TransitionOrder(actor, TransitionInput{OrderID: orderID, Target: target})
		if err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}
	return order
}

func TestCreateOrderComputesTotalsAndSnapshotsPrices(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	if order.TotalAmount.String() != "590.00" {
		t.Fatalf("expected total 590.00, got %s", order.TotalAmount.String())
	}
	if order.DeliveryFee.String() != "150.00" {
		t.Fatalf("expected delivery fee 150.00, got %s", order.DeliveryFee.String())
	}
	if order.Status == nil || order.Status.Name != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %+v", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.Status == nil || item.Status.Name != constants.ItemStatusPending {
			t.Fatalf("expected pending item, got %+v", item.Status)
		}
		if !item.UnitPrice.MulInt(item.Quantity).Equal(item.TotalPrice.Decimal) {
			t.Fatalf("line total mismatch: %+v", item)
		}
	}
	if len(order.StatusHistory) != 1 {
		t.Fatalf("expected 1 history row after creation, got %d", len(order.StatusHistory))
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD") {
		t.Fatalf("unexpected order number: %s", order.OrderNumber)
	}

	// Raising the product price later must not touch the snapshot.
	newPrice, _ := models.NewMoneyFromString("999.00")
	if err := db.Model(&models.Product{}).Where("id = ?", order.Items[0].ProductID).Update("price", newPrice).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	reloaded, err := svc.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.TotalAmount.String() != "590.00" {
		t.Fatalf("total changed after price update: %s", reloaded.TotalAmount.String())
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	location := createTestLocation(t, db, true)
	product := createTestProduct(t, db, location.ID, "Roll", "100.00")

	_, err := svc.CreateOrder(CreateOrderInput{LocationID: location.ID})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		LocationID: location.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Quantity: 0}},
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		LocationID: location.ID,
		Items:      []CreateOrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	_, err = svc.CreateOrder(CreateOrderInput{
		LocationID: uuid.New(),
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestCreateOrderInactiveLocation(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	location := createTestLocation(t, db, false)
	product := createTestProduct(t, db, location.ID, "Roll", "100.00")

	_, err := svc.CreateOrder(CreateOrderInput{
		LocationID: location.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrLocationInactive) {
		t.Fatalf("expected ErrLocationInactive, got %v", err)
	}
}

func TestCreateOrderStopListProduct(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	location := createTestLocation(t, db, true)
	product := createTestProduct(t, db, location.ID, "Roll", "100.00")
	if err := db.Model(product).Update("is_on_stop_list", true).Error; err != nil {
		t.Fatalf("update stop list failed: %v", err)
	}

	_, err := svc.CreateOrder(CreateOrderInput{
		LocationID: location.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrProductUnavailable) {
		t.Fatalf("expected ErrProductUnavailable, got %v", err)
	}
}

func TestCreateOrderRejectsForeignLocationProduct(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	location := createTestLocation(t, db, true)
	other := createTestLocation(t, db, true)
	product := createTestProduct(t, db, other.ID, "Roll", "100.00")

	_, err := svc.CreateOrder(CreateOrderInput{
		LocationID: location.ID,
		Items:      []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for foreign product, got %v", err)
	}
}

func TestTransitionOrderFullLifecycle(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	manager := createTestStaff(t, db, "manager@test.local", constants.RoleManager)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)
	actor := Actor{UserID: manager.ID, Capabilities: manager.RoleNames()}

	advanceOrder(t, svc, actor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
		constants.OrderStatusAssembled,
	)

	assigned, err := svc.AssignCourier(actor, order.ID, courier.ID, nil)
	if err != nil {
		t.Fatalf("assign courier failed: %v", err)
	}
	if assigned.Status.Name != constants.OrderStatusPickedUp {
		t.Fatalf("expected picked_up after assignment, got %s", assigned.Status.Name)
	}
	if assigned.CourierID == nil || *assigned.CourierID != courier.ID {
		t.Fatalf("courier not stamped: %+v", assigned.CourierID)
	}

	courierActor := Actor{UserID: courier.ID, Capabilities: courier.RoleNames()}
	delivered, err := svc.MarkDelivered(courierActor, order.ID, nil)
	if err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if delivered.Status.Name != constants.OrderStatusDelivered {
		t.Fatalf("expected delivered, got %s", delivered.Status.Name)
	}
	if delivered.CompletedAt == nil {
		t.Fatalf("completed_at must be stamped on delivery")
	}

	// One row per transition plus the creation row.
	if len(delivered.StatusHistory) != 7 {
		t.Fatalf("expected 7 history rows, got %d", len(delivered.StatusHistory))
	}

	// Terminal: no exits, not even cancel.
	_, err = svc.TransitionOrder(actor, TransitionInput{OrderID: order.ID, Target: constants.OrderStatusCancelled})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition from delivered, got %v", err)
	}
}

func TestTransitionOrderSameStatusIsNoOp(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	confirmed := advanceOrder(t, svc, SystemActor, order.ID, constants.OrderStatusConfirmed)
	again, err := svc.TransitionOrder(SystemActor, TransitionInput{OrderID: order.ID, Target: constants.OrderStatusConfirmed})
	if err != nil {
		t.Fatalf("no-op transition failed: %v", err)
	}
	if again.Version != confirmed.Version {
		t.Fatalf("no-op must not bump version: %d vs %d", again.Version, confirmed.Version)
	}
	if len(again.StatusHistory) != len(confirmed.StatusHistory) {
		t.Fatalf("no-op must not append history: %d vs %d", len(again.StatusHistory), len(confirmed.StatusHistory))
	}
}

func TestTransitionOrderIllegalJump(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	_, err := svc.TransitionOrder(SystemActor, TransitionInput{OrderID: order.ID, Target: constants.OrderStatusReady})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %T", err)
	}
	if te.From != constants.OrderStatusPending || te.To != constants.OrderStatusReady {
		t.Fatalf("unexpected transition error: %+v", te)
	}
}

func TestTransitionOrderStaleVersion(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	advanceOrder(t, svc, SystemActor, order.ID, constants.OrderStatusConfirmed)

	stale := order.Version // version before the confirm bumped it
	_, err := svc.TransitionOrder(SystemActor, TransitionInput{
		OrderID: order.ID,
		Target:  constants.OrderStatusPreparing,
		Version: &stale,
	})
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// Retry with the current version succeeds.
	current, err := svc.GetOrder(order.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	_, err = svc.TransitionOrder(SystemActor, TransitionInput{
		OrderID: order.ID,
		Target:  constants.OrderStatusPreparing,
		Version: &current.Version,
	})
	if err != nil {
		t.Fatalf("retry with fresh version failed: %v", err)
	}
}

func TestTransitionOrderUnknownStatus(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	_, err := svc.TransitionOrder(SystemActor, TransitionInput{OrderID: order.ID, Target: "archived"})
	if !errors.Is(err, ErrStatusUnknown) {
		t.Fatalf("expected ErrStatusUnknown, got %v", err)
	}
}

func TestCancelCascadesToNonTerminalItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	chef := createTestStaff(t, db, "chef@test.local", constants.RoleSushiChef)
	chefActor := Actor{UserID: chef.ID, Capabilities: chef.RoleNames()}

	// Drive the first item to its terminal delivered state.
	first := order.Items[0]
	for _, target := range []string{
		constants.ItemStatusPreparing,
		constants.ItemStatusPrepared,
		constants.ItemStatusAssembled,
		constants.ItemStatusDelivered,
	} {
		if _, err := svc.TransitionItem(chefActor, ItemTransitionInput{
			OrderID: order.ID,
			ItemID:  first.ID,
			Target:  target,
		}); err != nil {
			t.Fatalf("item transition to %s failed: %v", target, err)
		}
	}

	cancelled, err := svc.TransitionOrder(SystemActor, TransitionInput{OrderID: order.ID, Target: constants.OrderStatusCancelled})
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status.Name != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status.Name)
	}
	for _, item := range cancelled.Items {
		switch item.ID {
		case first.ID:
			if item.Status.Name != constants.ItemStatusDelivered {
				t.Fatalf("terminal item must keep its state, got %s", item.Status.Name)
			}
		default:
			if item.Status.Name != constants.ItemStatusCancelled {
				t.Fatalf("non-terminal item must cascade to cancelled, got %s", item.Status.Name)
			}
		}
	}
}

func TestTransitionItemStampsPreparer(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	chef := createTestStaff(t, db, "chef@test.local", constants.RoleSushiChef)
	chefActor := Actor{UserID: chef.ID, Capabilities: chef.RoleNames()}
	item := order.Items[0]

	updated, err := svc.TransitionItem(chefActor, ItemTransitionInput{
		OrderID: order.ID,
		ItemID:  item.ID,
		Target:  constants.ItemStatusPreparing,
	})
	if err != nil {
		t.Fatalf("item transition failed: %v", err)
	}
	got := findItem(t, updated, item.ID)
	if got.PreparedByID == nil || *got.PreparedByID != chef.ID {
		t.Fatalf("preparer not stamped: %+v", got.PreparedByID)
	}
	if got.PreparedAt != nil {
		t.Fatalf("prepared_at must not be set before prepared")
	}

	updated, err = svc.TransitionItem(chefActor, ItemTransitionInput{
		OrderID: order.ID,
		ItemID:  item.ID,
		Target:  constants.ItemStatusPrepared,
	})
	if err != nil {
		t.Fatalf("item transition failed: %v", err)
	}
	got = findItem(t, updated, item.ID)
	if got.PreparedAt == nil {
		t.Fatalf("prepared_at must be stamped on prepared")
	}
}

func TestTransitionItemIllegal(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	_, err := svc.TransitionItem(SystemActor, ItemTransitionInput{
		OrderID: order.ID,
		ItemID:  order.Items[0].ID,
		Target:  constants.ItemStatusAssembled,
	})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}

	_, err = svc.TransitionItem(SystemActor, ItemTransitionInput{
		OrderID: order.ID,
		ItemID:  uuid.New(),
		Target:  constants.ItemStatusPreparing,
	})
	if !errors.Is(err, ErrOrderItemNotFound) {
		t.Fatalf("expected ErrOrderItemNotFound, got %v", err)
	}
}

func TestAssignCourierRequiresCourierRole(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	packer := createTestStaff(t, db, "packer@test.local", constants.RolePacker)

	advanceOrder(t, svc, SystemActor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
		constants.OrderStatusAssembled,
	)

	_, err := svc.AssignCourier(SystemActor, order.ID, packer.ID, nil)
	if !errors.Is(err, ErrCourierNotFound) {
		t.Fatalf("expected ErrCourierNotFound for non-courier, got %v", err)
	}
}

func TestAssignCourierBeforeAssembledIsIllegal(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)

	advanceOrder(t, svc, SystemActor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
	)

	_, err := svc.AssignCourier(SystemActor, order.ID, courier.ID, nil)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition from ready, got %v", err)
	}
}

func TestAssignCourierDefaultsToActor(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)
	courierActor := Actor{UserID: courier.ID, Capabilities: courier.RoleNames()}

	advanceOrder(t, svc, SystemActor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
		constants.OrderStatusAssembled,
	)

	assigned, err := svc.AssignCourier(courierActor, order.ID, uuid.Nil, nil)
	if err != nil {
		t.Fatalf("self-assignment failed: %v", err)
	}
	if assigned.CourierID == nil || *assigned.CourierID != courier.ID {
		t.Fatalf("expected actor as courier, got %+v", assigned.CourierID)
	}
}

func TestMarkDeliveredWithoutCourier(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)

	_, err := svc.MarkDelivered(SystemActor, order.ID, nil)
	if !errors.Is(err, ErrNoCourierAssigned) {
		t.Fatalf("expected ErrNoCourierAssigned, got %v", err)
	}
}

func TestMarkDeliveredForeignCourier(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)
	other := createTestStaff(t, db, "other@test.local", constants.RoleCourier)
	manager := createTestStaff(t, db, "manager@test.local", constants.RoleManager)

	advanceOrder(t, svc, SystemActor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
		constants.OrderStatusAssembled,
	)
	if _, err := svc.AssignCourier(SystemActor, order.ID, courier.ID, nil); err != nil {
		t.Fatalf("assign courier failed: %v", err)
	}

	otherActor := Actor{UserID: other.ID, Capabilities: other.RoleNames()}
	_, err := svc.MarkDelivered(otherActor, order.ID, nil)
	if !errors.Is(err, ErrCourierMismatch) {
		t.Fatalf("expected ErrCourierMismatch, got %v", err)
	}

	// Managers may complete on behalf of any courier.
	managerActor := Actor{UserID: manager.ID, Capabilities: manager.RoleNames()}
	if _, err := svc.MarkDelivered(managerActor, order.ID, nil); err != nil {
		t.Fatalf("manager completion failed: %v", err)
	}
}

func TestMarkPackedStampsAssembler(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, svc, db)
	packer := createTestStaff(t, db, "packer@test.local", constants.RolePacker)
	packerActor := Actor{UserID: packer.ID, Capabilities: packer.RoleNames()}

	advanceOrder(t, svc, SystemActor, order.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
	)

	packed, err := svc.MarkPacked(packerActor, order.ID, nil)
	if err != nil {
		t.Fatalf("mark packed failed: %v", err)
	}
	if packed.Status.Name != constants.OrderStatusAssembled {
		t.Fatalf("expected assembled, got %s", packed.Status.Name)
	}
	if packed.AssemblerID == nil || *packed.AssemblerID != packer.ID {
		t.Fatalf("assembler not stamped: %+v", packed.AssemblerID)
	}
}

func TestQueueViews(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)

	// Order A stays pending: items still need the kitchen.
	orderA, location := createTestOrder(t, svc, db)

	// Order B at the same location reaches ready: out of the kitchen,
	// waiting for packing.
	product := createTestProduct(t, db, location.ID, "Set", "1200.00")
	orderB, err := svc.CreateOrder(CreateOrderInput{
		CustomerName:  "Anna",
		CustomerPhone: "+79990000000",
		Address:       "Mira 3",
		LocationID:    location.ID,
		Items:         []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order B failed: %v", err)
	}
	for _, item := range orderB.Items {
		for _, target := range []string{constants.ItemStatusPreparing, constants.ItemStatusPrepared} {
			if _, err := svc.TransitionItem(SystemActor, ItemTransitionInput{
				OrderID: orderB.ID, ItemID: item.ID, Target: target,
			}); err != nil {
				t.Fatalf("item transition failed: %v", err)
			}
		}
	}
	advanceOrder(t, svc, SystemActor, orderB.ID,
		constants.OrderStatusConfirmed,
		constants.OrderStatusPreparing,
		constants.OrderStatusReady,
	)

	kitchen, err := svc.KitchenQueue(location.ID)
	if err != nil {
		t.Fatalf("kitchen queue failed: %v", err)
	}
	if len(kitchen) != 1 || kitchen[0].ID != orderA.ID {
		t.Fatalf("expected only order A in kitchen queue, got %d", len(kitchen))
	}

	packing, err := svc.PackingQueue(location.ID)
	if err != nil {
		t.Fatalf("packing queue failed: %v", err)
	}
	if len(packing) != 1 || packing[0].ID != orderB.ID {
		t.Fatalf("expected only order B in packing queue, got %d", len(packing))
	}

	// Assemble B: it becomes available for couriers.
	advanceOrder(t, svc, SystemActor, orderB.ID, constants.OrderStatusAssembled)
	courierQueue, err := svc.CourierQueue(location.ID, courier.ID)
	if err != nil {
		t.Fatalf("courier queue failed: %v", err)
	}
	if len(courierQueue) != 1 || courierQueue[0].ID != orderB.ID {
		t.Fatalf("expected only order B in courier queue, got %d", len(courierQueue))
	}

	// Once picked up by this courier it stays on their list.
	if _, err := svc.AssignCourier(SystemActor, orderB.ID, courier.ID, nil); err != nil {
		t.Fatalf("assign courier failed: %v", err)
	}
	courierQueue, err = svc.CourierQueue(location.ID, courier.ID)
	if err != nil {
		t.Fatalf("courier queue failed: %v", err)
	}
	if len(courierQueue) != 1 || courierQueue[0].ID != orderB.ID {
		t.Fatalf("expected picked order on courier's own list, got %d", len(courierQueue))
	}

	// Other couriers no longer see it.
	other := createTestStaff(t, db, "other@test.local", constants.RoleCourier)
	otherQueue, err := svc.CourierQueue(location.ID, other.ID)
	if err != nil {
		t.Fatalf("courier queue failed: %v", err)
	}
	if len(otherQueue) != 0 {
		t.Fatalf("expected empty queue for another courier, got %d", len(otherQueue))
	}

	_, err = svc.KitchenQueue(uuid.New())
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound for unknown location, got %v", err)
	}
}

func TestListOrdersFilters(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	orderA, location := createTestOrder(t, svc, db)
	advanceOrder(t, svc, SystemActor, orderA.ID, constants.OrderStatusConfirmed)

	product := createTestProduct(t, db, location.ID, "Set", "800.00")
	if _, err := svc.CreateOrder(CreateOrderInput{
		CustomerName:  "Anna",
		CustomerPhone: "+79990000000",
		Address:       "Mira 3",
		LocationID:    location.ID,
		Items:         []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("create second order failed: %v", err)
	}

	orders, total, err := svc.ListOrders(ListOrdersInput{LocationID: location.ID})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = svc.ListOrders(ListOrdersInput{LocationID: location.ID, Status: constants.OrderStatusConfirmed})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if total != 1 || orders[0].ID != orderA.ID {
		t.Fatalf("expected only confirmed order, got total=%d", total)
	}

	orders, total, err = svc.ListOrders(ListOrdersInput{OrderNumber: orderA.OrderNumber})
	if err != nil {
		t.Fatalf("number lookup failed: %v", err)
	}
	if total != 1 || orders[0].ID != orderA.ID {
		t.Fatalf("expected lookup by number to match, got total=%d", total)
	}

	_, _, err = svc.ListOrders(ListOrdersInput{Status: "archived"})
	if !errors.Is(err, ErrStatusUnknown) {
		t.Fatalf("expected ErrStatusUnknown, got %v", err)
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	number := generateOrderNumber(now)
	if !strings.HasPrefix(number, "ORD20260314150926") {
		t.Fatalf("unexpected number: %s", number)
	}
	if len(number) != len("ORD20260314150926")+3 {
		t.Fatalf("expected 3-digit suffix, got %s", number)
	}
}

func findItem(t *testing.T, order *models.Order, itemID uuid.UUID) *models.OrderItem {
	t.Helper()
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			return &order.Items[i]
		}
	}
	t.Fatalf("item %s not found on order", itemID)
	return nil
}
