package service

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VPodolski/MakiMora/internal/constants"
	"github.com/VPodolski/MakiMora/internal/repository"
)

// memoryCache is a map-backed Cache for tests.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	c.sets++
	return nil
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestTrackProjectsPublicFields(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, orderSvc, db)
	advanceOrder(t, orderSvc, SystemActor, order.ID, constants.OrderStatusConfirmed)

	trackingSvc := NewTrackingService(repository.NewOrderRepository(db), orderSvc.statuses, nil, 0)
	track, err := trackingSvc.Track(order.OrderNumber)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if track.OrderNumber != order.OrderNumber {
		t.Fatalf("number mismatch: %s", track.OrderNumber)
	}
	if track.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", track.Status)
	}
	if track.TotalAmount != "590.00" {
		t.Fatalf("expected total 590.00, got %s", track.TotalAmount)
	}
	if len(track.History) != 2 {
		t.Fatalf("expected 2 history steps, got %d", len(track.History))
	}
	if track.History[0].Status != constants.OrderStatusPending {
		t.Fatalf("history must start at pending, got %s", track.History[0].Status)
	}
}

func TestTrackUnknownNumber(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	trackingSvc := NewTrackingService(repository.NewOrderRepository(db), orderSvc.statuses, nil, 0)

	_, err := trackingSvc.Track("ORD00000000000000000")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestTrackServesFromCache(t *testing.T) {
	orderSvc, db := setupOrderServiceTest(t)
	order, _ := createTestOrder(t, orderSvc, db)

	cache := newMemoryCache()
	trackingSvc := NewTrackingService(repository.NewOrderRepository(db), orderSvc.statuses, cache, 30)

	if _, err := trackingSvc.Track(order.OrderNumber); err != nil {
		t.Fatalf("first track failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the projection to be cached, sets=%d", cache.sets)
	}

	track, err := trackingSvc.Track(order.OrderNumber)
	if err != nil {
		t.Fatalf("second track failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected a cache hit, hits=%d", cache.hits)
	}
	if track.OrderNumber != order.OrderNumber {
		t.Fatalf("cached projection mismatch: %s", track.OrderNumber)
	}
}
