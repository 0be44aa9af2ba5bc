package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// CourierEarningService keeps the courier compensation ledger.
type CourierEarningService struct {
	earningRepo repository.CourierEarningRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	statuses    *StatusRegistry
}

// NewCourierEarningService wires the earning service.
func NewCourierEarningService(
	earningRepo repository.CourierEarningRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	statuses *StatusRegistry,
) *CourierEarningService {
	return &CourierEarningService{
		earningRepo: earningRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		statuses:    statuses,
	}
}

// AccrueDeliveryFee writes the delivery fee ledger row for a delivered
// order. Safe to call more than once for the same order.
func (s *CourierEarningService) AccrueDeliveryFee(orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	delivered, err := s.statuses.OrderStatus(constants.OrderStatusDelivered)
	if err != nil {
		return err
	}
	if order.StatusID != delivered.ID {
		return newOrderTransitionError(order.Status.Name, constants.OrderStatusDelivered)
	}
	if order.CourierID == nil {
		return ErrNoCourierAssigned
	}

	exists, err := s.earningRepo.ExistsForOrder(orderID, constants.EarningTypeDeliveryFee)
	if err != nil {
		return err
	}
	if exists {
		logger.Infow("delivery fee already accrued", "order_id", orderID)
		return nil
	}

	earning := &models.CourierEarning{
		CourierID:   *order.CourierID,
		OrderID:     orderID,
		Amount:      order.DeliveryFee,
		EarningType: constants.EarningTypeDeliveryFee,
		Date:        time.Now(),
	}
	if order.CompletedAt != nil {
		earning.Date = *order.CompletedAt
	}
	if err := s.earningRepo.Create(earning); err != nil {
		return err
	}

	logger.Infow("delivery fee accrued",
		"order_id", orderID,
		"courier_id", *order.CourierID,
		"amount", order.DeliveryFee.String(),
	)
	return nil
}

// RecordAdjustmentInput is a manual bonus or penalty entry.
type RecordAdjustmentInput struct {
	CourierID   uuid.UUID
	OrderID     uuid.UUID
	Amount      models.Money
	EarningType string
	Date        time.Time
}

// RecordAdjustment writes a bonus or penalty row against an order.
func (s *CourierEarningService) RecordAdjustment(input RecordAdjustmentInput) (*models.CourierEarning, error) {
	switch input.EarningType {
	case constants.EarningTypeBonus, constants.EarningTypePenalty:
	default:
		return nil, ErrStatusUnknown
	}

	courier, err := s.userRepo.GetByID(input.CourierID)
	if err != nil {
		return nil, err
	}
	if courier == nil || !courier.HasRole(constants.RoleCourier) {
		return nil, ErrCourierNotFound
	}
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}
	earning := &models.CourierEarning{
		CourierID:   input.CourierID,
		OrderID:     input.OrderID,
		Amount:      input.Amount,
		EarningType: input.EarningType,
		Date:        input.Date,
	}
	if err := s.earningRepo.Create(earning); err != nil {
		return nil, err
	}
	return earning, nil
}

// ListEarnings returns a filtered page of ledger rows.
func (s *CourierEarningService) ListEarnings(filter repository.EarningListFilter) ([]models.CourierEarning, int64, error) {
	return s.earningRepo.List(filter)
}

// EarningSummary totals one courier's earnings in a period.
type EarningSummary struct {
	CourierID uuid.UUID    `json:"courier_id"`
	From      time.Time    `json:"from"`
	To        time.Time    `json:"to"`
	Total     models.Money `json:"total"`
}

// Summarize totals a courier's earnings for a period.
func (s *CourierEarningService) Summarize(courierID uuid.UUID, from, to time.Time) (*EarningSummary, error) {
	total, err := s.earningRepo.SumByCourier(courierID, from, to)
	if err != nil {
		return nil, err
	}
	return &EarningSummary{CourierID: courierID, From: from, To: to, Total: total}, nil
}
