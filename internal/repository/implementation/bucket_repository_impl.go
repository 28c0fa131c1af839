package implementation

import (
	"context"
	"errors"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/mapper"
	"signal-for-good-be/internal/model"
	"signal-for-good-be/internal/repository/contract"
	"signal-for-good-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BucketRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BucketMapper
}

func NewBucketRepository(db *gorm.DB) contract.BucketRepository {
	return &BucketRepositoryImpl{
		db:     db,
		mapper: mapper.NewBucketMapper(),
	}
}

func (r *BucketRepositoryImpl) Create(ctx context.Context, bucket *entity.Bucket) error {
	m := r.mapper.ToModel(bucket)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bucket = *r.mapper.ToEntity(m)
	return nil
}

func (r *BucketRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bucket, error) {
	var m model.Bucket
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BucketRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bucket, error) {
	var models []*model.Bucket
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BucketRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Bucket{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
