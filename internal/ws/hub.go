package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/VPodolski/MakiMora/internal/logger"
)

// Event is one message pushed to subscribers of a location room.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type locationEvent struct {
	LocationID uuid.UUID
	Event      Event
}

// Hub keeps the active connections grouped by location and fans
// committed order events out to them.
type Hub struct {
	// rooms holds registered clients keyed by location ID
	rooms map[uuid.UUID]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *locationEvent

	mu sync.RWMutex
}

// NewHub creates an idle hub. Call Run in a goroutine to start it.
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *locationEvent, 256),
	}
}

// Run drains the register, unregister and broadcast channels.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.locationID] == nil {
				h.rooms[client.locationID] = make(map[*Client]bool)
			}
			h.rooms[client.locationID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.locationID]; ok {
				if _, exists := clients[client]; exists {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.locationID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			clients := h.rooms[event.LocationID]

			message, err := json.Marshal(event.Event)
			if err != nil {
				h.mu.Unlock()
				continue
			}

			for client := range clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop the connection.
					close(client.send)
					delete(h.rooms[event.LocationID], client)
					if len(h.rooms[event.LocationID]) == 0 {
						delete(h.rooms, event.LocationID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishOrderEvent marshals a payload and queues it for every client
// subscribed to the location. Never blocks the caller beyond the
// broadcast buffer.
func (h *Hub) PublishOrderEvent(locationID uuid.UUID, eventType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Warnw("ws payload marshal failed", "event_type", eventType, "error", err)
		return
	}
	h.broadcast <- &locationEvent{
		LocationID: locationID,
		Event:      Event{Type: eventType, Payload: raw},
	}
}
