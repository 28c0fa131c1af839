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

type DonationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationRepository(db *gorm.DB) contract.DonationRepository {
	return &DonationRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationRepositoryImpl) CreateIntent(ctx context.Context, intent *entity.DonationIntent) error {
	m := r.mapper.IntentToModel(intent)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*intent = *r.mapper.IntentToEntity(m)
	return nil
}

func (r *DonationRepositoryImpl) UpdateIntent(ctx context.Context, intent *entity.DonationIntent) error {
	m := r.mapper.IntentToModel(intent)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*intent = *r.mapper.IntentToEntity(m)
	return nil
}

func (r *DonationRepositoryImpl) FindOneIntent(ctx context.Context, specs ...specification.Specification) (*entity.DonationIntent, error) {
	var m model.DonationIntent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.IntentToEntity(&m), nil
}

func (r *DonationRepositoryImpl) CountIntents(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DonationIntent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateEvent relies on the unique index over provider_event_id. DO NOTHING
// on conflict leaves RowsAffected at 0, which signals a replayed webhook.
func (r *DonationRepositoryImpl) CreateEvent(ctx context.Context, event *entity.DonationEvent) (bool, error) {
	m := r.mapper.EventToModel(event)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_event_id"}},
		DoNothing: true,
	}).Create(m)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	*event = *r.mapper.EventToEntity(m)
	return true, nil
}

func (r *DonationRepositoryImpl) CountEvents(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.DonationEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
