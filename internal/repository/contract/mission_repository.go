package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type MissionRepository interface {
	Create(ctx context.Context, mission *entity.Mission) error
	Update(ctx context.Context, mission *entity.Mission) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
