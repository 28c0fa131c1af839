package implementation

import (
	"context"
	"time"

	"signal-for-good-be/internal/model"
	"signal-for-good-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MissionLeaseRepositoryImpl struct {
	db *gorm.DB
}

func NewMissionLeaseRepository(db *gorm.DB) contract.MissionLeaseRepository {
	return &MissionLeaseRepositoryImpl{db: db}
}

// Acquire takes the lease in a single statement. The insert wins when no row
// exists; the conditional update wins only when the existing lease expired.
// RowsAffected stays 0 when another worker holds a live lease.
func (r *MissionLeaseRepositoryImpl) Acquire(ctx context.Context, missionId uuid.UUID, ttl time.Duration) (bool, error) {
	now := time.Now().UTC()
	lease := &model.MissionLease{
		MissionId:  missionId,
		AcquiredAt: now,
		ExpiresAt:  now.Add(ttl),
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "mission_id"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Lt{Column: clause.Column{Table: "mission_leases", Name: "expires_at"}, Value: now},
		}},
		DoUpdates: clause.AssignmentColumns([]string{"acquired_at", "expires_at"}),
	}).Create(lease)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MissionLeaseRepositoryImpl) Release(ctx context.Context, missionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("mission_id = ?", missionId).
		Delete(&model.MissionLease{}).Error
}
