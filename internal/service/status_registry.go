package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/models"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// StatusRegistry resolves the status vocabularies once at startup so
// transitions never look rows up by name at request time. The name
// sets are closed; a missing seed row is a deployment error surfaced
// when the registry is built, not on the hot path.
type StatusRegistry struct {
	orderByName map[string]models.OrderStatus
	orderByID   map[uuid.UUID]models.OrderStatus
	itemByName  map[string]models.OrderItemStatus
	itemByID    map[uuid.UUID]models.OrderItemStatus
}

// BuildStatusRegistry loads both vocabularies and verifies every
// status named in the transition graphs has a row.
func BuildStatusRegistry(repo repository.StatusRepository) (*StatusRegistry, error) {
	orderStatuses, err := repo.ListOrderStatuses()
	if err != nil {
		return nil, err
	}
	itemStatuses, err := repo.ListItemStatuses()
	if err != nil {
		return nil, err
	}

	reg := &StatusRegistry{
		orderByName: make(map[string]models.OrderStatus, len(orderStatuses)),
		orderByID:   make(map[uuid.UUID]models.OrderStatus, len(orderStatuses)),
		itemByName:  make(map[string]models.OrderItemStatus, len(itemStatuses)),
		itemByID:    make(map[uuid.UUID]models.OrderItemStatus, len(itemStatuses)),
	}
	for _, s := range orderStatuses {
		reg.orderByName[s.Name] = s
		reg.orderByID[s.ID] = s
	}
	for _, s := range itemStatuses {
		reg.itemByName[s.Name] = s
		reg.itemByID[s.ID] = s
	}

	for name := range orderTransitions {
		if _, ok := reg.orderByName[name]; !ok {
			return nil, fmt.Errorf("order status %q is not seeded", name)
		}
	}
	for name := range itemTransitions {
		if _, ok := reg.itemByName[name]; !ok {
			return nil, fmt.Errorf("order item status %q is not seeded", name)
		}
	}
	return reg, nil
}

// OrderStatus resolves an order status by name.
func (r *StatusRegistry) OrderStatus(name string) (models.OrderStatus, error) {
	s, ok := r.orderByName[name]
	if !ok {
		return models.OrderStatus{}, ErrStatusUnknown
	}
	return s, nil
}

// OrderStatusByID resolves an order status by id.
func (r *StatusRegistry) OrderStatusByID(id uuid.UUID) (models.OrderStatus, error) {
	s, ok := r.orderByID[id]
	if !ok {
		return models.OrderStatus{}, ErrStatusUnknown
	}
	return s, nil
}

// ItemStatus resolves an item status by name.
func (r *StatusRegistry) ItemStatus(name string) (models.OrderItemStatus, error) {
	s, ok := r.itemByName[name]
	if !ok {
		return models.OrderItemStatus{}, ErrStatusUnknown
	}
	return s, nil
}

// ItemStatusByID resolves an item status by id.
func (r *StatusRegistry) ItemStatusByID(id uuid.UUID) (models.OrderItemStatus, error) {
	s, ok := r.itemByID[id]
	if !ok {
		return models.OrderItemStatus{}, ErrStatusUnknown
	}
	return s, nil
}
