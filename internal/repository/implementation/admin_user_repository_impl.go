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

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminUserMapper
}

func NewAdminUserRepository(db *gorm.DB) contract.AdminUserRepository {
	return &AdminUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminUserMapper(),
	}
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, admin *entity.AdminUser) error {
	m := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*admin = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	var m model.AdminUser
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminUserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.AdminUser{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
