package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type GenerationLogRepository interface {
	Create(ctx context.Context, log *entity.GenerationLog) error
	Update(ctx context.Context, log *entity.GenerationLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
