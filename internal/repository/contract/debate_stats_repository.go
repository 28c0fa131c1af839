package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type DebateStatsRepository interface {
	Upsert(ctx context.Context, stats *entity.DebateStats) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DebateStats, error)
}
