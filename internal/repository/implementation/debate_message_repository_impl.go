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

type DebateMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DebateMessageMapper
}

func NewDebateMessageRepository(db *gorm.DB) contract.DebateMessageRepository {
	return &DebateMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewDebateMessageMapper(),
	}
}

func (r *DebateMessageRepositoryImpl) Create(ctx context.Context, message *entity.DebateMessage) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *DebateMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DebateMessage, error) {
	var models []*model.DebateMessage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DebateMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DebateMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DebateMessageRepositoryImpl) MaxRound(ctx context.Context, missionId uuid.UUID) (int, error) {
	var maxRound int
	err := r.db.WithContext(ctx).
		Model(&model.DebateMessage{}).
		Where("mission_id = ?", missionId).
		Select("COALESCE(MAX(round_number), 0)").
		Scan(&maxRound).Error
	if err != nil {
		return 0, err
	}
	return maxRound, nil
}
