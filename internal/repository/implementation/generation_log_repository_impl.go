package implementation

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/mapper"
	"signal-for-good-be/internal/model"
	"signal-for-good-be/internal/repository/contract"
	"signal-for-good-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GenerationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationLogMapper
}

func NewGenerationLogRepository(db *gorm.DB) contract.GenerationLogRepository {
	return &GenerationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewGenerationLogMapper(),
	}
}

func (r *GenerationLogRepositoryImpl) Create(ctx context.Context, log *entity.GenerationLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *GenerationLogRepositoryImpl) Update(ctx context.Context, log *entity.GenerationLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *GenerationLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationLog, error) {
	var models []*model.GenerationLog
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *GenerationLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.GenerationLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
