package service

import (
	"context"
	"errors"

	"signal-for-good-be/internal/constant"
	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrMissionNotFound = errors.New("mission not found")

type MissionListFilter struct {
	BucketSlug string
	Status     string
	Limit      int
	Offset     int
}

type IMissionService interface {
	ListBuckets(ctx context.Context) ([]dto.BucketResponse, error)
	ListMissions(ctx context.Context, filter MissionListFilter) ([]dto.MissionResponse, error)
	GetMissionDetail(ctx context.Context, missionId uuid.UUID) (*dto.MissionDetailResponse, error)
	ListAgents(ctx context.Context) ([]dto.AgentResponse, error)
}

type missionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMissionService(uowFactory unitofwork.RepositoryFactory) IMissionService {
	return &missionService{uowFactory: uowFactory}
}

func (s *missionService) ListBuckets(ctx context.Context) ([]dto.BucketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	buckets, err := uow.BucketRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	out := make([]dto.BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.BucketResponse{Id: b.Id, Slug: string(b.Slug), Name: b.Name})
	}
	return out, nil
}

func (s *missionService) ListMissions(ctx context.Context, filter MissionListFilter) ([]dto.MissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.PublicMissions{}}

	if filter.BucketSlug != "" {
		bucket, err := uow.BucketRepository().FindOne(ctx, specification.Filter("slug", filter.BucketSlug))
		if err != nil {
			return nil, err
		}
		if bucket == nil {
			return []dto.MissionResponse{}, nil
		}
		specs = append(specs, specification.Filter("bucket_id", bucket.Id))
	}
	if filter.Status != "" {
		specs = append(specs, specification.Filter("status", filter.Status))
	}

	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: filter.Offset})

	missions, err := uow.MissionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MissionResponse, 0, len(missions))
	for _, m := range missions {
		out = append(out, toMissionResponse(m))
	}
	return out, nil
}

func toMissionResponse(m *entity.Mission) dto.MissionResponse {
	return dto.MissionResponse{
		Id:           m.Id,
		BucketId:     m.BucketId,
		Title:        m.Title,
		CoreQuestion: m.CoreQuestion,
		DebateHook:   m.DebateHook,
		Status:       string(m.Status),
		IsLive:       m.IsLive,
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func roundName(round int) string {
	if round >= 1 && round <= constant.MaxRounds {
		return constant.RoundNames[round-1]
	}
	return ""
}

func (s *missionService) GetMissionDetail(ctx context.Context, missionId uuid.UUID) (*dto.MissionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mission, err := uow.MissionRepository().FindOne(ctx, specification.ByID{ID: missionId})
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}

	detail := &dto.MissionDetailResponse{Mission: toMissionResponse(mission)}

	messages, err := uow.DebateMessageRepository().FindAll(ctx,
		specification.ByMission{MissionID: missionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	detail.Messages = make([]dto.DebateMessageResponse, 0, len(messages))
	for _, m := range messages {
		detail.Messages = append(detail.Messages, dto.DebateMessageResponse{
			Id:          m.Id,
			AgentId:     m.AgentId,
			RoundNumber: m.RoundNumber,
			RoundName:   roundName(m.RoundNumber),
			Lane:        string(m.Lane),
			Content:     m.Content,
			CreatedAt:   m.CreatedAt,
		})
	}

	claims, err := uow.ClaimRepository().FindAll(ctx,
		specification.ByMission{MissionID: missionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	claimIds := make([]uuid.UUID, 0, len(claims))
	for _, c := range claims {
		claimIds = append(claimIds, c.Id)
	}
	citationsByClaim := map[uuid.UUID][]dto.CitationResponse{}
	if len(claimIds) > 0 {
		citations, err := uow.CitationRepository().FindAll(ctx, specification.ByClaims{ClaimIDs: claimIds})
		if err != nil {
			return nil, err
		}
		for _, cit := range citations {
			citationsByClaim[cit.ClaimId] = append(citationsByClaim[cit.ClaimId], dto.CitationResponse{
				Id:           cit.Id,
				SourceId:     cit.SourceId,
				Snippet:      cit.Snippet,
				WhyItMatters: cit.WhyItMatters,
			})
		}
	}

	detail.Claims = make([]dto.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		if c.IsRetracted {
			continue
		}
		detail.Claims = append(detail.Claims, dto.ClaimResponse{
			Id:         c.Id,
			MessageId:  c.MessageId,
			ClaimText:  c.ClaimText,
			ClaimType:  string(c.ClaimType),
			Confidence: c.Confidence,
			IsFlagged:  c.IsFlagged,
			Citations:  citationsByClaim[c.Id],
		})
	}

	score, err := uow.ScoreRepository().FindOne(ctx, specification.ByMission{MissionID: missionId})
	if err != nil {
		return nil, err
	}
	if score != nil {
		detail.Score = &dto.ScoreResponse{
			EvidenceScore:      score.EvidenceScore,
			ActionabilityScore: score.ActionabilityScore,
			RiskScore:          score.RiskScore,
			ClarityScore:       score.ClarityScore,
			OverallScore:       score.OverallScore,
			CitationCoverage:   score.CitationCoverage,
			FlaggedClaimRate:   score.FlaggedClaimRate,
		}
	}

	card, err := uow.SolutionCardRepository().FindOne(ctx,
		specification.ByMission{MissionID: missionId},
		specification.Filter("is_published", true),
	)
	if err != nil {
		return nil, err
	}
	if card != nil {
		detail.Card = &dto.SolutionCardResponse{
			Id:                     card.Id,
			Title:                  card.Title,
			Summary:                card.Summary,
			Content:                card.Content,
			IntendedOwner:          card.IntendedOwner,
			Timeline:               card.Timeline,
			CostBand:               card.CostBand,
			StaffingAssumptions:    card.StaffingAssumptions,
			RisksMitigations:       card.RisksMitigations,
			SuccessMetrics:         card.SuccessMetrics,
			DecisionSummary:        card.DecisionSummary,
			WhyThisOverAlternative: card.WhyThisOverAlternative,
			ImplementationSteps:    card.ImplementationSteps,
			First30DaysPlan:        card.First30DaysPlan,
		}
	}

	stats, err := uow.DebateStatsRepository().FindOne(ctx, specification.ByMission{MissionID: missionId})
	if err != nil {
		return nil, err
	}
	if stats != nil {
		detail.Stats = &dto.DebateStatsResponse{
			LastMessageAt:    stats.LastMessageAt,
			MessagesLastHour: stats.MessagesLastHour,
			ClaimsCount:      stats.ClaimsCount,
			CitationCoverage: stats.CitationCoverage,
		}
	}

	return detail, nil
}

func (s *missionService) ListAgents(ctx context.Context) ([]dto.AgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agents, err := uow.AgentRepository().FindAll(ctx,
		specification.ActiveAgents{},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, dto.AgentResponse{Id: a.Id, Name: a.Name, Role: a.Role})
	}
	return out, nil
}
