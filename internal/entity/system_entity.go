package entity

import (
	"time"

	"github.com/google/uuid"
)

type GenerationStatus string

const (
	GenerationStatusRunning             GenerationStatus = "running"
	GenerationStatusCompleted           GenerationStatus = "completed"
	GenerationStatusCompletedWithErrors GenerationStatus = "completed_with_errors"
)

// SystemStatus is a singleton row doubling as feature flag (GenerationEnabled)
// and seeding idempotency guard (SeedVersion). Call sites go through the
// status service accessors instead of reaching into this struct.
type SystemStatus struct {
	Id                  uuid.UUID
	DebatesLive         int
	MessagesLast10Min   int
	CitationCoverage24h int
	GenerationEnabled   bool
	BudgetState         string
	SeedVersion         string
	SeededAt            *time.Time
	LastUpdated         time.Time
}

// GenerationLog is an append-only audit record per cycle invocation.
type GenerationLog struct {
	Id               uuid.UUID
	CycleType        string
	StartedAt        time.Time
	FinishedAt       *time.Time
	DurationMs       int64
	MissionsTouched  int
	MessagesCreated  int
	ClaimsCreated    int
	CitationsCreated int
	Errors           []string
	Status           GenerationStatus
}

// MissionLease is a per-mission advisory lock. A mission whose lease has not
// expired is skipped by the generator, so overlapping invocations cannot
// double-advance a round.
type MissionLease struct {
	MissionId  uuid.UUID
	AcquiredAt time.Time
	ExpiresAt  time.Time
}
