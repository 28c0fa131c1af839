package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type ScoreRepository interface {
	// Upsert inserts or replaces the mission's score (unique on mission_id).
	Upsert(ctx context.Context, score *entity.Score) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Score, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
