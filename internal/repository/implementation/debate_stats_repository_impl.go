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

type DebateStatsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DebateStatsMapper
}

func NewDebateStatsRepository(db *gorm.DB) contract.DebateStatsRepository {
	return &DebateStatsRepositoryImpl{
		db:     db,
		mapper: mapper.NewDebateStatsMapper(),
	}
}

func (r *DebateStatsRepositoryImpl) Upsert(ctx context.Context, stats *entity.DebateStats) error {
	m := r.mapper.ToModel(stats)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "mission_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_message_at", "messages_last_hour", "claims_count", "citation_coverage", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*stats = *r.mapper.ToEntity(m)
	return nil
}

func (r *DebateStatsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DebateStats, error) {
	var m model.DebateStats
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
