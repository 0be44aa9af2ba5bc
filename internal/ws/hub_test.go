package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

// mockClient builds a client without a real WebSocket connection.
func mockClient(hub *Hub, locationID uuid.UUID) *Client {
	return &Client{
		hub:        hub,
		locationID: locationID,
		send:       make(chan []byte, 256),
	}
}

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case msg := <-client.send:
		var event Event
		if err := json.Unmarshal(msg, &event); err != nil {
			t.Fatalf("unmarshal event failed: %v", err)
		}
		return event
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("client did not receive an event")
		return Event{}
	}
}

func expectSilence(t *testing.T, client *Client) {
	t.Helper()
	select {
	case msg := <-client.send:
		t.Fatalf("client must not receive anything, got %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	locationID := uuid.New()
	client := mockClient(hub, locationID)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if !hub.rooms[locationID][client] {
		t.Fatalf("client not registered in location room")
	}
}

func TestHubUnregisterCleansEmptyRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	locationID := uuid.New()
	client1 := mockClient(hub, locationID)
	client2 := mockClient(hub, locationID)
	hub.register <- client1
	hub.register <- client2
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- client1
	time.Sleep(10 * time.Millisecond)
	hub.mu.RLock()
	if len(hub.rooms[locationID]) != 1 {
		t.Fatalf("expected 1 client left, got %d", len(hub.rooms[locationID]))
	}
	hub.mu.RUnlock()

	hub.unregister <- client2
	time.Sleep(10 * time.Millisecond)
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if hub.rooms[locationID] != nil {
		t.Fatalf("room must be dropped when the last client leaves")
	}
}

func TestPublishOrderEventReachesOnlyTheLocation(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	locationA := uuid.New()
	locationB := uuid.New()
	clientA1 := mockClient(hub, locationA)
	clientA2 := mockClient(hub, locationA)
	clientB := mockClient(hub, locationB)
	hub.register <- clientA1
	hub.register <- clientA2
	hub.register <- clientB
	time.Sleep(10 * time.Millisecond)

	hub.PublishOrderEvent(locationA, "order_status_changed", map[string]interface{}{
		"order_number": "ORD20260301120000123",
		"status":       "ready",
	})

	for _, client := range []*Client{clientA1, clientA2} {
		event := receiveEvent(t, client)
		if event.Type != "order_status_changed" {
			t.Fatalf("unexpected event type: %s", event.Type)
		}
		var payload map[string]string
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload failed: %v", err)
		}
		if payload["status"] != "ready" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	}
	expectSilence(t, clientB)
}

func TestPublishOrderEventToEmptyRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	locationID := uuid.New()
	client := mockClient(hub, locationID)
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.PublishOrderEvent(uuid.New(), "order_created", map[string]string{"order_number": "ORD1"})
	expectSilence(t, client)
}

func TestSlowConsumerIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	locationID := uuid.New()
	slow := &Client{hub: hub, locationID: locationID, send: make(chan []byte)}
	hub.register <- slow
	time.Sleep(10 * time.Millisecond)

	// Nobody reads slow.send, so the first publish must evict the
	// client instead of blocking the hub.
	hub.PublishOrderEvent(locationID, "order_created", map[string]string{"order_number": "ORD1"})
	time.Sleep(20 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if hub.rooms[locationID][slow] {
		t.Fatalf("slow consumer must be evicted from the room")
	}
}
