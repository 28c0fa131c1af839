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
	"gorm.io/gorm/clause"
)

type ScoreRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScoreMapper
}

func NewScoreRepository(db *gorm.DB) contract.ScoreRepository {
	return &ScoreRepositoryImpl{
		db:     db,
		mapper: mapper.NewScoreMapper(),
	}
}

func (r *ScoreRepositoryImpl) Upsert(ctx context.Context, score *entity.Score) error {
	m := r.mapper.ToModel(score)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "mission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"evidence_score", "actionability_score", "risk_score", "clarity_score",
			"overall_score", "citation_coverage", "flagged_claim_rate", "revision_count", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*score = *r.mapper.ToEntity(m)
	return nil
}

func (r *ScoreRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Score, error) {
	var m model.Score
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ScoreRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Score{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
