package service

import (
	"context"
	"encoding/json"

	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/websocket"
	"signal-for-good-be/pkg/events"
	pktNats "signal-for-good-be/pkg/nats"

	"github.com/google/uuid"
)

type IFeedService interface {
	// Start subscribes to the debate event stream and relays updates to
	// connected viewers. Blocks only on subscription setup.
	Start() error
}

type feedService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewFeedService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) IFeedService {
	return &feedService{subscriber: subscriber, hub: hub, logger: log}
}

func (s *feedService) Start() error {
	return s.subscriber.Subscribe("debates.>", "live-feed", s.handle)
}

func (s *feedService) handle(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	missionID := uuid.Nil
	if raw, ok := payload["mission_id"].(string); ok {
		if parsed, err := uuid.Parse(raw); err == nil {
			missionID = parsed
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("feed", "payload marshal failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	s.hub.NotifyMission(missionID, event.EventType(), data)
	return nil
}
