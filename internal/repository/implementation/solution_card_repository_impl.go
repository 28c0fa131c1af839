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

type SolutionCardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SolutionCardMapper
}

func NewSolutionCardRepository(db *gorm.DB) contract.SolutionCardRepository {
	return &SolutionCardRepositoryImpl{
		db:     db,
		mapper: mapper.NewSolutionCardMapper(),
	}
}

func (r *SolutionCardRepositoryImpl) Create(ctx context.Context, card *entity.SolutionCard) error {
	m := r.mapper.ToModel(card)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*card = *r.mapper.ToEntity(m)
	return nil
}

func (r *SolutionCardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SolutionCard, error) {
	var m model.SolutionCard
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SolutionCardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.SolutionCard{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
