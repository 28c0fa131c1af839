package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MissionLeaseRepository implements the advisory lock over "advance this
// mission's round". Acquire succeeds when no lease row exists or the existing
// one has expired.
type MissionLeaseRepository interface {
	Acquire(ctx context.Context, missionId uuid.UUID, ttl time.Duration) (bool, error)
	Release(ctx context.Context, missionId uuid.UUID) error
}
