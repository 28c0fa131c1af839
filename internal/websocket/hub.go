package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"signal-for-good-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "debate_events"

// Hub fans debate activity out to connected viewers. Clients watch either a
// single mission or the whole feed (uuid.Nil mission id).
type Hub struct {
	// mission id -> watchers (uuid.Nil holds the global feed watchers)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout, optional
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.MissionID] = append(h.clients[client.MissionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "viewer connected", map[string]interface{}{"mission_id": client.MissionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.MissionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.MissionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.MissionID]) == 0 {
					delete(h.clients, client.MissionID)
				}
			}
			h.mu.Unlock()
		}
	}
}

type feedEvent struct {
	Type      string          `json:"type"`
	MissionID string          `json:"mission_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// NotifyMission pushes an update to that mission's watchers and the global
// feed, then republishes to Redis for peer instances.
func (h *Hub) NotifyMission(missionID uuid.UUID, eventType string, data []byte) {
	payload, _ := json.Marshal(feedEvent{
		Type:      eventType,
		MissionID: missionID.String(),
		Data:      data,
	})

	h.deliverLocal(missionID, payload)

	if h.rdb != nil {
		wire, _ := json.Marshal(map[string]interface{}{
			"mission_id": missionID.String(),
			"message":    payload,
		})
		h.rdb.Publish(context.Background(), clusterChannel, wire)
	}
}

func (h *Hub) deliverLocal(missionID uuid.UUID, payload []byte) {
	h.mu.RLock()
	targets := make([]*Client, 0)
	targets = append(targets, h.clients[missionID]...)
	if missionID != uuid.Nil {
		targets = append(targets, h.clients[uuid.Nil]...)
	}
	h.mu.RUnlock()

	for _, client := range targets {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "viewer buffer full, dropping", map[string]interface{}{"mission_id": client.MissionID})
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			MissionID string          `json:"mission_id"`
			Message   json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "bad cluster payload", map[string]interface{}{"error": err.Error()})
			continue
		}

		missionID, err := uuid.Parse(payload.MissionID)
		if err != nil {
			continue
		}
		h.deliverLocal(missionID, payload.Message)
	}
}
