package service

import (
	"fmt"
	"time"

	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// OrderTrack is the public tracking projection: enough for a
// customer to follow their order, nothing staff-internal.
type OrderTrack struct {
	OrderNumber string     `json:"order_number"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	TotalAmount string     `json:"total_amount"`
	DeliveryFee string     `json:"delivery_fee"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	History     []TrackStep `json:"history"`
}

// TrackStep is one audit step in the public view.
type TrackStep struct {
	Status    string    `json:"status"`
	Label     string    `json:"label"`
	ChangedAt time.Time `json:"changed_at"`
}

// TrackingService serves the public order tracking lookup with a
// short cache in front, since customers poll it.
type TrackingService struct {
	orderRepo repository.OrderRepository
	statuses  *StatusRegistry
	cache     Cache
	ttl       time.Duration
}

// NewTrackingService wires the tracking service. cache may be nil.
func NewTrackingService(orderRepo repository.OrderRepository, statuses *StatusRegistry, cache Cache, ttlSeconds int) *TrackingService {
	if ttlSeconds <= 0 {
		ttlSeconds = 15
	}
	return &TrackingService{
		orderRepo: orderRepo,
		statuses:  statuses,
		cache:     cache,
		ttl:       time.Duration(ttlSeconds) * time.Second,
	}
}

// Track returns the public projection for an order number.
func (s *TrackingService) Track(number string) (*OrderTrack, error) {
	key := fmt.Sprintf("track:%s", number)
	if s.cache != nil {
		var cached OrderTrack
		if ok, err := s.cache.GetJSON(key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	order, err := s.orderRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	track := s.project(order)
	if s.cache != nil {
		if err := s.cache.SetJSON(key, track, s.ttl); err != nil {
			logger.Warnw("tracking_cache_set_failed", "order_number", number, "error", err)
		}
	}
	return track, nil
}

func (s *TrackingService) project(order *models.Order) *OrderTrack {
	track := &OrderTrack{
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount.String(),
		DeliveryFee: order.DeliveryFee.String(),
		CreatedAt:   order.CreatedAt,
		CompletedAt: order.CompletedAt,
	}
	if status, err := s.statuses.OrderStatusByID(order.StatusID); err == nil {
		track.Status = status.Name
		track.StatusLabel = status.DisplayName
	}
	for _, h := range order.StatusHistory {
		step := TrackStep{ChangedAt: h.ChangedAt}
		if status, err := s.statuses.OrderStatusByID(h.StatusID); err == nil {
			step.Status = status.Name
			step.Label = status.DisplayName
		}
		track.History = append(track.History, step)
	}
	return track
}
