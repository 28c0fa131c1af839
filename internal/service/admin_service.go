package service

import (
	"context"
	"errors"
	"os"
	"time"

	"signal-for-good-be/internal/analytics"
	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type IAdminService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminDTO, error)
	GetMetrics(ctx context.Context) (*dto.AdminMetricsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	tracker    *analytics.Tracker
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, tracker *analytics.Tracker) IAdminService {
	return &adminService{uowFactory: uowFactory, logger: log, tracker: tracker}
}

func (s *adminService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminUserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"role":     admin.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin", "admin login", map[string]interface{}{"admin_id": admin.Id.String()})

	return &dto.AdminLoginResponse{
		AccessToken: signed,
		Admin: dto.AdminDTO{
			Id:       admin.Id,
			Email:    admin.Email,
			FullName: admin.FullName,
			Role:     admin.Role,
		},
	}, nil
}

func (s *adminService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminUserRepository().Count(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.AdminUser{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := uow.AdminUserRepository().Create(ctx, admin); err != nil {
		return nil, err
	}

	return &dto.AdminDTO{
		Id:       admin.Id,
		Email:    admin.Email,
		FullName: admin.FullName,
		Role:     admin.Role,
	}, nil
}

func (s *adminService) GetMetrics(ctx context.Context) (*dto.AdminMetricsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	res := &dto.AdminMetricsResponse{}

	var err error
	if res.MissionsTotal, err = uow.MissionRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.MissionsLive, err = uow.MissionRepository().Count(ctx, specification.LiveMissions{}); err != nil {
		return nil, err
	}
	if res.MessagesTotal, err = uow.DebateMessageRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.ClaimsTotal, err = uow.ClaimRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.CitationsTotal, err = uow.CitationRepository().Count(ctx); err != nil {
		return nil, err
	}
	if res.DonationsTotal, err = uow.DonationRepository().CountIntents(ctx, specification.Filter("status", string(entity.DonationIntentCompleted))); err != nil {
		return nil, err
	}
	if res.DonationEvents, err = uow.DonationRepository().CountEvents(ctx); err != nil {
		return nil, err
	}
	if s.tracker != nil {
		res.DonationsSinceStart, res.DonationCentsSinceStart = s.tracker.Totals()
	}

	logs, err := uow.GenerationLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "started_at", Desc: true},
		specification.Limit{Count: 10},
	)
	if err != nil {
		return nil, err
	}
	res.RecentCycles = make([]dto.GenerationLogResponse, 0, len(logs))
	for _, l := range logs {
		res.RecentCycles = append(res.RecentCycles, dto.GenerationLogResponse{
			Id:               l.Id,
			CycleType:        l.CycleType,
			StartedAt:        l.StartedAt,
			FinishedAt:       l.FinishedAt,
			DurationMs:       l.DurationMs,
			MissionsTouched:  l.MissionsTouched,
			MessagesCreated:  l.MessagesCreated,
			ClaimsCreated:    l.ClaimsCreated,
			CitationsCreated: l.CitationsCreated,
			Errors:           l.Errors,
			Status:           string(l.Status),
		})
	}

	return res, nil
}
