package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type BucketRepository interface {
	Create(ctx context.Context, bucket *entity.Bucket) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bucket, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bucket, error)
}
