package unitofwork

import (
	"context"
	"fmt"

	"signal-for-good-be/internal/repository/contract"
	"signal-for-good-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) BucketRepository() contract.BucketRepository {
	return implementation.NewBucketRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MissionRepository() contract.MissionRepository {
	return implementation.NewMissionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AgentRepository() contract.AgentRepository {
	return implementation.NewAgentRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DebateMessageRepository() contract.DebateMessageRepository {
	return implementation.NewDebateMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClaimRepository() contract.ClaimRepository {
	return implementation.NewClaimRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CitationRepository() contract.CitationRepository {
	return implementation.NewCitationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SourceRepository() contract.SourceRepository {
	return implementation.NewSourceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ScoreRepository() contract.ScoreRepository {
	return implementation.NewScoreRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SolutionCardRepository() contract.SolutionCardRepository {
	return implementation.NewSolutionCardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DebateStatsRepository() contract.DebateStatsRepository {
	return implementation.NewDebateStatsRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SystemStatusRepository() contract.SystemStatusRepository {
	return implementation.NewSystemStatusRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GenerationLogRepository() contract.GenerationLogRepository {
	return implementation.NewGenerationLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MissionLeaseRepository() contract.MissionLeaseRepository {
	return implementation.NewMissionLeaseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationRepository() contract.DonationRepository {
	return implementation.NewDonationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminUserRepository() contract.AdminUserRepository {
	return implementation.NewAdminUserRepository(u.getDB())
}
