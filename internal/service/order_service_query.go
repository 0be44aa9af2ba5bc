package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// ListOrdersInput filters the staff order listing.
type ListOrdersInput struct {
	Page        int
	PageSize    int
	LocationID  uuid.UUID
	Status      string
	OrderNumber string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ListOrders returns a filtered page of orders for the manager view.
func (s *OrderService) ListOrders(input ListOrdersInput) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:        input.Page,
		PageSize:    input.PageSize,
		LocationID:  input.LocationID,
		OrderNumber: input.OrderNumber,
		CreatedFrom: input.StartDate,
		CreatedTo:   input.EndDate,
	}
	if input.Status != "" {
		status, err := s.statuses.OrderStatus(input.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.StatusID = status.ID
	}
	return s.orderRepo.List(filter)
}

// KitchenQueue returns non-terminal orders at the location containing
// at least one item still pending or in preparation, oldest first.
func (s *OrderService) KitchenQueue(locationID uuid.UUID) ([]models.Order, error) {
	if err := s.requireLocation(locationID); err != nil {
		return nil, err
	}
	pending, err := s.statuses.ItemStatus(constants.ItemStatusPending)
	if err != nil {
		return nil, err
	}
	preparing, err := s.statuses.ItemStatus(constants.ItemStatusPreparing)
	if err != nil {
		return nil, err
	}
	excluded, err := s.terminalOrderStatusIDs()
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListKitchen(locationID, []uuid.UUID{pending.ID, preparing.ID}, excluded)
}

// PackingQueue returns orders at the location that are ready to be
// assembled.
func (s *OrderService) PackingQueue(locationID uuid.UUID) ([]models.Order, error) {
	if err := s.requireLocation(locationID); err != nil {
		return nil, err
	}
	ready, err := s.statuses.OrderStatus(constants.OrderStatusReady)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListByStatus(locationID, ready.ID)
}

// CourierQueue returns assembled, unassigned orders plus the
// requesting courier's own unfinished orders at the location.
func (s *OrderService) CourierQueue(locationID, courierID uuid.UUID) ([]models.Order, error) {
	if err := s.requireLocation(locationID); err != nil {
		return nil, err
	}
	assembled, err := s.statuses.OrderStatus(constants.OrderStatusAssembled)
	if err != nil {
		return nil, err
	}
	excluded, err := s.terminalOrderStatusIDs()
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListCourier(locationID, assembled.ID, courierID, excluded)
}

func (s *OrderService) requireLocation(locationID uuid.UUID) error {
	location, err := s.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return ErrLocationNotFound
	}
	return nil
}

func (s *OrderService) terminalOrderStatusIDs() ([]uuid.UUID, error) {
	delivered, err := s.statuses.OrderStatus(constants.OrderStatusDelivered)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.statuses.OrderStatus(constants.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	return []uuid.UUID{delivered.ID, cancelled.ID}, nil
}
