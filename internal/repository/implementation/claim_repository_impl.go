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

type ClaimRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClaimMapper
}

func NewClaimRepository(db *gorm.DB) contract.ClaimRepository {
	return &ClaimRepositoryImpl{
		db:     db,
		mapper: mapper.NewClaimMapper(),
	}
}

func (r *ClaimRepositoryImpl) Create(ctx context.Context, claim *entity.Claim) error {
	m := r.mapper.ToModel(claim)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*claim = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClaimRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Claim, error) {
	var models []*model.Claim
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClaimRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Claim{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
