package unitofwork

import (
	"context"

	"signal-for-good-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BucketRepository() contract.BucketRepository
	MissionRepository() contract.MissionRepository
	AgentRepository() contract.AgentRepository

	DebateMessageRepository() contract.DebateMessageRepository
	ClaimRepository() contract.ClaimRepository
	CitationRepository() contract.CitationRepository
	SourceRepository() contract.SourceRepository

	ScoreRepository() contract.ScoreRepository
	SolutionCardRepository() contract.SolutionCardRepository
	DebateStatsRepository() contract.DebateStatsRepository

	SystemStatusRepository() contract.SystemStatusRepository
	GenerationLogRepository() contract.GenerationLogRepository
	MissionLeaseRepository() contract.MissionLeaseRepository

	DonationRepository() contract.DonationRepository
	AdminUserRepository() contract.AdminUserRepository
}
