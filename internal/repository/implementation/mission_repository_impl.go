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

type MissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MissionMapper
}

func NewMissionRepository(db *gorm.DB) contract.MissionRepository {
	return &MissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewMissionMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MissionRepositoryImpl) Create(ctx context.Context, mission *entity.Mission) error {
	m := r.mapper.ToModel(mission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mission = *r.mapper.ToEntity(m)
	return nil
}

func (r *MissionRepositoryImpl) Update(ctx context.Context, mission *entity.Mission) error {
	m := r.mapper.ToModel(mission)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*mission = *r.mapper.ToEntity(m)
	return nil
}

func (r *MissionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error) {
	var m model.Mission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error) {
	var models []*model.Mission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MissionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Mission{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
