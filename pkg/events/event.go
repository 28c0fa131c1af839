package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "MISSION_ADVANCED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by the generator and payment flows.
const (
	TypeMissionAdvanced   = "MISSION_ADVANCED"
	TypeMissionCompleted  = "MISSION_COMPLETED"
	TypeCycleFinished     = "CYCLE_FINISHED"
	TypeSeedCompleted     = "SEED_COMPLETED"
	TypeDonationCompleted = "DONATION_COMPLETED"
)

func NewMissionAdvanced(missionId string, round int, messages int) Event {
	return BaseEvent{
		Type: TypeMissionAdvanced,
		Data: map[string]interface{}{
			"mission_id": missionId,
			"round":      round,
			"messages":   messages,
		},
		OccurredAt: time.Now(),
	}
}

func NewMissionCompleted(missionId string, overallScore int) Event {
	return BaseEvent{
		Type: TypeMissionCompleted,
		Data: map[string]interface{}{
			"mission_id":    missionId,
			"overall_score": overallScore,
		},
		OccurredAt: time.Now(),
	}
}

func NewCycleFinished(missionsTouched, messagesCreated int, status string) Event {
	return BaseEvent{
		Type: TypeCycleFinished,
		Data: map[string]interface{}{
			"missions_touched": missionsTouched,
			"messages_created": messagesCreated,
			"status":           status,
		},
		OccurredAt: time.Now(),
	}
}

func NewSeedCompleted(seedVersion string, missions, sources int) Event {
	return BaseEvent{
		Type: TypeSeedCompleted,
		Data: map[string]interface{}{
			"seed_version": seedVersion,
			"missions":     missions,
			"sources":      sources,
		},
		OccurredAt: time.Now(),
	}
}

func NewDonationCompleted(orderId string, amountCents int64) Event {
	return BaseEvent{
		Type: TypeDonationCompleted,
		Data: map[string]interface{}{
			"order_id":     orderId,
			"amount_cents": amountCents,
		},
		OccurredAt: time.Now(),
	}
}
