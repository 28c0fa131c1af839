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

type SourceRepositoryImpl struct {
	db         *gorm.DB
	mapper     *mapper.SourceMapper
	packMapper *mapper.SourcePackMapper
}

func NewSourceRepository(db *gorm.DB) contract.SourceRepository {
	return &SourceRepositoryImpl{
		db:         db,
		mapper:     mapper.NewSourceMapper(),
		packMapper: mapper.NewSourcePackMapper(),
	}
}

func (r *SourceRepositoryImpl) Create(ctx context.Context, source *entity.Source) error {
	m := r.mapper.ToModel(source)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*source = *r.mapper.ToEntity(m)
	return nil
}

func (r *SourceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Source, error) {
	var models []*model.Source
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SourceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Source{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SourceRepositoryImpl) CreatePack(ctx context.Context, pack *entity.SourcePack) error {
	m := r.packMapper.ToModel(pack)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pack = *r.packMapper.ToEntity(m)
	return nil
}

func (r *SourceRepositoryImpl) FindOnePack(ctx context.Context, specs ...specification.Specification) (*entity.SourcePack, error) {
	var m model.SourcePack
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.packMapper.ToEntity(&m), nil
}
