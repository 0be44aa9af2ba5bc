package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// DashboardService aggregates order figures for the manager overview.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	statuses      *StatusRegistry
}

// NewDashboardService wires the dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository, statuses *StatusRegistry) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo, statuses: statuses}
}

// DashboardStatusCount is one slice of the per-status breakdown.
type DashboardStatusCount struct {
	Status      string `json:"status"`
	DisplayName string `json:"display_name"`
	Count       int64  `json:"count"`
}

// DashboardSummary is the manager overview for a period.
type DashboardSummary struct {
	LocationID  *uuid.UUID             `json:"location_id,omitempty"`
	From        time.Time              `json:"from"`
	To          time.Time              `json:"to"`
	TotalOrders int64                  `json:"total_orders"`
	Revenue     models.Money           `json:"revenue"`
	ByStatus    []DashboardStatusCount `json:"by_status"`
}

// Summary builds the overview for the period. A nil location covers
// the whole network.
func (s *DashboardService) Summary(locationID uuid.UUID, from, to time.Time) (*DashboardSummary, error) {
	delivered, err := s.statuses.OrderStatus(constants.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}

	total, err := s.dashboardRepo.CountOrders(locationID, from, to)
	if err != nil {
		return nil, err
	}
	revenue, err := s.dashboardRepo.Revenue(locationID, delivered.ID, from, to)
	if err != nil {
		return nil, err
	}
	counts, err := s.dashboardRepo.CountByStatus(locationID, from, to)
	if err != nil {
		return nil, err
	}

	byStatus := make([]DashboardStatusCount, 0, len(counts))
	for _, row := range counts {
		status, err := s.statuses.OrderStatusByID(row.StatusID)
		if err != nil {
			return nil, err
		}
		byStatus = append(byStatus, DashboardStatusCount{
			Status:      status.Name,
			DisplayName: status.DisplayName,
			Count:       row.Count,
		})
	}

	summary := &DashboardSummary{
		From:        from,
		To:          to,
		TotalOrders: total,
		Revenue:     revenue,
		ByStatus:    byStatus,
	}
	if locationID != uuid.Nil {
		id := locationID
		summary.LocationID = &id
	}
	return summary, nil
}

// Today builds the overview for the current calendar day.
func (s *DashboardService) Today(locationID uuid.UUID) (*DashboardSummary, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.Summary(locationID, from, now)
}
