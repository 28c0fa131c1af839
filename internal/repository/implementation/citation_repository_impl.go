package implementation

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/mapper"
	"signal-for-good-be/internal/model"
	"signal-for-good-be/internal/repository/contract"
	"signal-for-good-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CitationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CitationMapper
}

func NewCitationRepository(db *gorm.DB) contract.CitationRepository {
	return &CitationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCitationMapper(),
	}
}

func (r *CitationRepositoryImpl) Create(ctx context.Context, citation *entity.Citation) error {
	m := r.mapper.ToModel(citation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*citation = *r.mapper.ToEntity(m)
	return nil
}

func (r *CitationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Citation, error) {
	var models []*model.Citation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CitationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Citation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CitationRepositoryImpl) CountForMission(ctx context.Context, missionId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Citation{}).
		Joins("JOIN claims ON claims.id = citations.claim_id").
		Where("claims.mission_id = ?", missionId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
