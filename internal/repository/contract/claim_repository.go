package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Claim, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
