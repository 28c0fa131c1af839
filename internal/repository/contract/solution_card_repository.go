package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type SolutionCardRepository interface {
	Create(ctx context.Context, card *entity.SolutionCard) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SolutionCard, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
