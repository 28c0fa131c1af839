package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DebateMessageRepository interface {
	Create(ctx context.Context, message *entity.DebateMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DebateMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MaxRound returns the highest round_number among a mission's messages,
	// or 0 when the mission has none.
	MaxRound(ctx context.Context, missionId uuid.UUID) (int, error)
}
