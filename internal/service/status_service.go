package service

import (
	"context"
	"time"

	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

type IStatusService interface {
	GetStatus(ctx context.Context) (*dto.SystemStatusResponse, error)
	IsGenerationEnabled(ctx context.Context) (bool, error)
	CurrentSeedVersion(ctx context.Context) (string, error)
	// EnsureStatusRow returns the singleton, creating a default row when the
	// table is empty.
	EnsureStatusRow(ctx context.Context) (*entity.SystemStatus, error)
}

type statusService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

const statusCacheKey = "system_status"

func NewStatusService(uowFactory unitofwork.RepositoryFactory) IStatusService {
	return &statusService{
		uowFactory: uowFactory,
		cache:      gocache.New(10*time.Second, time.Minute),
	}
}

func (s *statusService) GetStatus(ctx context.Context) (*dto.SystemStatusResponse, error) {
	if cached, found := s.cache.Get(statusCacheKey); found {
		return cached.(*dto.SystemStatusResponse), nil
	}

	status, err := s.EnsureStatusRow(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.SystemStatusResponse{
		DebatesLive:         status.DebatesLive,
		MessagesLast10Min:   status.MessagesLast10Min,
		CitationCoverage24h: status.CitationCoverage24h,
		GenerationEnabled:   status.GenerationEnabled,
		BudgetState:         status.BudgetState,
		SeedVersion:         status.SeedVersion,
		SeededAt:            status.SeededAt,
		LastUpdated:         status.LastUpdated,
	}
	s.cache.Set(statusCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

func (s *statusService) IsGenerationEnabled(ctx context.Context) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	status, err := uow.SystemStatusRepository().Get(ctx)
	if err != nil {
		return false, err
	}
	if status == nil {
		return false, nil
	}
	return status.GenerationEnabled, nil
}

func (s *statusService) CurrentSeedVersion(ctx context.Context) (string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	status, err := uow.SystemStatusRepository().Get(ctx)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "", nil
	}
	return status.SeedVersion, nil
}

func (s *statusService) EnsureStatusRow(ctx context.Context) (*entity.SystemStatus, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.SystemStatusRepository()

	status, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if status != nil {
		return status, nil
	}

	status = &entity.SystemStatus{
		GenerationEnabled: false,
		BudgetState:       "ok",
		LastUpdated:       time.Now(),
	}
	if err := repo.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}
