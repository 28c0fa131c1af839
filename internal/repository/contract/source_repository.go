package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type SourceRepository interface {
	Create(ctx context.Context, source *entity.Source) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Source, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreatePack(ctx context.Context, pack *entity.SourcePack) error
	FindOnePack(ctx context.Context, specs ...specification.Specification) (*entity.SourcePack, error)
}
