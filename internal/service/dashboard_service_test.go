package service

import (
	"testing"
	"time"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/repository"

	"github.com/google/uuid"
)

func TestDashboardSummary(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	dashboardSvc := NewDashboardService(repository.NewDashboardRepository(db), orderSvc.statuses)
	courier := createTestStaff(t, db, "courier@test.local", constants.RoleCourier)

	// One delivered order (counts toward revenue), one still pending.
	delivered := deliverTestOrder(t, orderSvc, db, courier.ID)
	location := delivered.LocationID
	product := createTestProduct(t, db, location, "Set", "800.00")
	if _, err := orderSvc.CreateOrder(CreateOrderInput{
		CustomerName:  "Anna",
		CustomerPhone: "+79990000000",
		Address:       "Mira 3",
		LocationID:    location,
		Items:         []CreateOrderItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("create pending order failed: %v", err)
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	summary, err := dashboardSvc.Summary(location, from, to)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", summary.TotalOrders)
	}
	// Only the delivered order's 590.00 counts.
	if summary.Revenue.String() != "590.00" {
		t.Fatalf("expected revenue 590.00, got %s", summary.Revenue.String())
	}
	if summary.LocationID == nil || *summary.LocationID != location {
		t.Fatalf("location not echoed: %+v", summary.LocationID)
	}

	counts := map[string]int64{}
	for _, row := range summary.ByStatus {
		counts[row.Status] = row.Count
	}
	if counts[constants.OrderStatusDelivered] != 1 || counts[constants.OrderStatusPending] != 1 {
		t.Fatalf("unexpected status breakdown: %+v", counts)
	}
}

func TestDashboardSummaryWholeNetwork(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	dashboardSvc := NewDashboardService(repository.NewDashboardRepository(db), orderSvc.statuses)

	// Orders at two different locations.
	createTestOrder(t, orderSvc, db)
	createTestOrder(t, orderSvc, db)

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	summary, err := dashboardSvc.Summary(uuid.Nil, from, to)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("expected network-wide count 2, got %d", summary.TotalOrders)
	}
	if summary.LocationID != nil {
		t.Fatalf("network summary must not carry a location")
	}
	if summary.Revenue.String() != "0.00" {
		t.Fatalf("no delivered orders, expected revenue 0.00, got %s", summary.Revenue.String())
	}
}

func TestDashboardEmptyPeriod(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	dashboardSvc := NewDashboardService(repository.NewDashboardRepository(db), orderSvc.statuses)
	createTestOrder(t, orderSvc, db)

	from := time.Now().Add(-48 * time.Hour)
	to := time.Now().Add(-24 * time.Hour)
	summary, err := dashboardSvc.Summary(uuid.Nil, from, to)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalOrders != 0 || len(summary.ByStatus) != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
