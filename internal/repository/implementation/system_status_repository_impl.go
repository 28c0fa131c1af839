package implementation

import (
	"context"
	"errors"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/mapper"
	"signal-for-good-be/internal/model"
	"signal-for-good-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SystemStatusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SystemStatusMapper
}

func NewSystemStatusRepository(db *gorm.DB) contract.SystemStatusRepository {
	return &SystemStatusRepositoryImpl{
		db:     db,
		mapper: mapper.NewSystemStatusMapper(),
	}
}

func (r *SystemStatusRepositoryImpl) Get(ctx context.Context) (*entity.SystemStatus, error) {
	var m model.SystemStatus
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SystemStatusRepositoryImpl) Create(ctx context.Context, status *entity.SystemStatus) error {
	m := r.mapper.ToModel(status)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*status = *r.mapper.ToEntity(m)
	return nil
}

func (r *SystemStatusRepositoryImpl) Update(ctx context.Context, status *entity.SystemStatus) error {
	m := r.mapper.ToModel(status)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*status = *r.mapper.ToEntity(m)
	return nil
}
