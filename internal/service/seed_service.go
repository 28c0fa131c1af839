package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"signal-for-good-be/internal/constant"
	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/internal/seeddata"
	"signal-for-good-be/pkg/events"
	pktNats "signal-for-good-be/pkg/nats"

	"github.com/google/uuid"
)

type ISeedService interface {
	// Seed populates the full demo catalog. Re-running against an already
	// seeded database is a no-op keyed on the seed version.
	Seed(ctx context.Context) (*dto.SeedResponse, error)
}

type seedService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
	rng            *rand.Rand
}

func NewSeedService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
	rng *rand.Rand,
) ISeedService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &seedService{
		uowFactory:     uowFactory,
		logger:         log,
		eventPublisher: eventPublisher,
		rng:            rng,
	}
}

var bucketNames = map[entity.BucketSlug]string{
	entity.BucketEducation: "Education",
	entity.BucketJobs:      "Jobs",
	entity.BucketHousing:   "Housing",
	entity.BucketHealth:    "Health",
}

func (s *seedService) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.SystemStatusRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if status != nil && status.SeedVersion == constant.SeedVersion {
		return &dto.SeedResponse{AlreadySeeded: true, Version: constant.SeedVersion}, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	res := &dto.SeedResponse{Version: constant.SeedVersion}

	agents, err := s.seedAgents(ctx, uow, res)
	if err != nil {
		return nil, err
	}

	for _, slug := range entity.AllBuckets {
		bucket := &entity.Bucket{
			Id:   uuid.New(),
			Slug: slug,
			Name: bucketNames[slug],
		}
		if err := uow.BucketRepository().Create(ctx, bucket); err != nil {
			return nil, err
		}

		sources, err := s.seedSources(ctx, uow, bucket, res)
		if err != nil {
			return nil, err
		}

		for i, topic := range seeddata.TopicsByBucket[slug] {
			if err := s.seedMission(ctx, uow, bucket, topic, i, agents, sources, res); err != nil {
				return nil, err
			}
		}

		res.Log = append(res.Log, fmt.Sprintf("bucket %s: %d missions, %d sources", slug, len(seeddata.TopicsByBucket[slug]), len(sources)))
	}

	if err := s.writeStatus(ctx, uow, status); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("seed", "seed completed", map[string]interface{}{
		"version":  constant.SeedVersion,
		"missions": res.MissionsCreated,
		"sources":  res.SourcesCreated,
	})

	if s.eventPublisher != nil {
		evt := events.NewSeedCompleted(constant.SeedVersion, res.MissionsCreated, res.SourcesCreated)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("seed", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return res, nil
}

func (s *seedService) seedAgents(ctx context.Context, uow unitofwork.UnitOfWork, res *dto.SeedResponse) ([]*entity.Agent, error) {
	agents := make([]*entity.Agent, 0, len(seeddata.Panel))
	for _, seed := range seeddata.Panel {
		agent := &entity.Agent{
			Id:       uuid.New(),
			Name:     seed.Name,
			Role:     seed.Role,
			IsActive: true,
		}
		if err := uow.AgentRepository().Create(ctx, agent); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	res.Log = append(res.Log, fmt.Sprintf("panel: %d agents", len(agents)))
	return agents, nil
}

func (s *seedService) seedSources(ctx context.Context, uow unitofwork.UnitOfWork, bucket *entity.Bucket, res *dto.SeedResponse) ([]*entity.Source, error) {
	pack := &entity.SourcePack{
		Id:          uuid.New(),
		BucketId:    bucket.Id,
		Name:        fmt.Sprintf("%s Research Pack", bucket.Name),
		Description: fmt.Sprintf("Curated research references for %s debates", strings.ToLower(bucket.Name)),
	}
	if err := uow.SourceRepository().CreatePack(ctx, pack); err != nil {
		return nil, err
	}

	sources := make([]*entity.Source, 0, len(seeddata.SourcesByBucket[bucket.Slug]))
	for _, seed := range seeddata.SourcesByBucket[bucket.Slug] {
		source := &entity.Source{
			Id:           uuid.New(),
			SourcePackId: pack.Id,
			Title:        seed.Title,
			URL:          seed.URL,
			SourceType:   seed.SourceType,
			Publisher:    seed.Publisher,
		}
		if err := uow.SourceRepository().Create(ctx, source); err != nil {
			return nil, err
		}
		sources = append(sources, source)
		res.SourcesCreated++
	}
	return sources, nil
}

// seedMission builds one mission with its debate history. Topic position
// within the bucket decides the lifecycle stage: the first four are live
// mid-debate, the next six recently completed, the rest completed longer ago.
func (s *seedService) seedMission(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	bucket *entity.Bucket,
	topic seeddata.Topic,
	index int,
	agents []*entity.Agent,
	sources []*entity.Source,
	res *dto.SeedResponse,
) error {
	now := time.Now()

	var (
		status      entity.MissionStatus
		isLive      bool
		rounds      int
		createdAt   time.Time
		completedAt *time.Time
		lastMsgAt   time.Time
	)

	switch {
	case index < 4:
		status = entity.MissionStatusLive
		isLive = true
		rounds = 1 + s.rng.Intn(3)
		createdAt = now.Add(-time.Duration(24+s.rng.Intn(48)) * time.Hour)
		lastMsgAt = now.Add(-time.Duration(1+s.rng.Intn(9)) * time.Minute)
	case index < 10:
		status = entity.MissionStatusCompleted
		rounds = constant.MaxRounds
		createdAt = now.Add(-time.Duration(72+s.rng.Intn(168)) * time.Hour)
		done := now.Add(-time.Duration(1+s.rng.Intn(23)) * time.Hour)
		completedAt = &done
		lastMsgAt = done
	default:
		status = entity.MissionStatusCompleted
		rounds = constant.MaxRounds
		createdAt = now.Add(-time.Duration(168+s.rng.Intn(480)) * time.Hour)
		done := now.Add(-time.Duration(24+s.rng.Intn(144)) * time.Hour)
		completedAt = &done
		lastMsgAt = done
	}

	startedAt := createdAt
	mission := &entity.Mission{
		Id:            uuid.New(),
		BucketId:      bucket.Id,
		Title:         topic.Title,
		CoreQuestion:  topic.Question,
		DebateHook:    topic.Hook,
		SuccessMetric: "Measurable outcome improvement within 12 months of implementation",
		Status:        status,
		IsLive:        isLive,
		StartedAt:     &startedAt,
		CompletedAt:   completedAt,
		CreatedAt:     createdAt,
	}
	if err := uow.MissionRepository().Create(ctx, mission); err != nil {
		return err
	}
	res.MissionsCreated++

	messages, err := s.seedMessages(ctx, uow, mission, agents, rounds, createdAt, lastMsgAt, res)
	if err != nil {
		return err
	}

	claimsCount, citationsCount, err := s.seedClaims(ctx, uow, mission, messages, sources, res)
	if err != nil {
		return err
	}

	if status == entity.MissionStatusCompleted {
		if err := s.seedScoreAndCard(ctx, uow, mission); err != nil {
			return err
		}
	}

	coverage := 0
	if claimsCount > 0 {
		coverage = clampScore((citationsCount*100 + claimsCount/2) / claimsCount)
	}
	stats := &entity.DebateStats{
		MissionId:        mission.Id,
		LastMessageAt:    &lastMsgAt,
		MessagesLastHour: 0,
		ClaimsCount:      claimsCount,
		CitationCoverage: coverage,
	}
	if isLive {
		stats.MessagesLastHour = 2 + s.rng.Intn(4)
	}
	return uow.DebateStatsRepository().Upsert(ctx, stats)
}

func (s *seedService) seedMessages(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	mission *entity.Mission,
	agents []*entity.Agent,
	rounds int,
	createdAt, lastMsgAt time.Time,
	res *dto.SeedResponse,
) ([]*entity.DebateMessage, error) {
	perRound := make([]int, rounds)
	total := 0
	for r := 0; r < rounds; r++ {
		perRound[r] = constant.MinCycleMessages + s.rng.Intn(constant.MaxCycleMessages-constant.MinCycleMessages+1)
		total += perRound[r]
	}

	// Spread message timestamps evenly across the mission's lifespan.
	span := lastMsgAt.Sub(createdAt)
	step := span / time.Duration(total)

	messages := make([]*entity.DebateMessage, 0, total)
	seq := 0
	for r := 0; r < rounds; r++ {
		round := r + 1
		for m := 0; m < perRound[r]; m++ {
			lane := entity.Lanes[m%len(entity.Lanes)]
			msg := &entity.DebateMessage{
				Id:          uuid.New(),
				MissionId:   mission.Id,
				AgentId:     agents[s.rng.Intn(len(agents))].Id,
				RoundNumber: round,
				Lane:        lane,
				Content:     seeddata.MessageContent(s.rng, mission.Title, round, lane),
				CreatedAt:   createdAt.Add(step * time.Duration(seq+1)),
			}
			if err := uow.DebateMessageRepository().Create(ctx, msg); err != nil {
				return nil, err
			}
			messages = append(messages, msg)
			res.MessagesCreated++
			seq++
		}
	}
	return messages, nil
}

// claimConfidence maps a claim type to its seeded confidence range.
func (s *seedService) claimConfidence(claimType entity.ClaimType) int {
	switch claimType {
	case entity.ClaimTypeEvidence:
		return 70 + s.rng.Intn(25)
	case entity.ClaimTypePrecedent:
		return 60 + s.rng.Intn(30)
	case entity.ClaimTypeAssumption:
		return 40 + s.rng.Intn(30)
	default:
		return 20 + s.rng.Intn(30)
	}
}

func (s *seedService) seedClaims(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	mission *entity.Mission,
	messages []*entity.DebateMessage,
	sources []*entity.Source,
	res *dto.SeedResponse,
) (int, int, error) {
	if len(messages) == 0 {
		return 0, 0, nil
	}

	numClaims := 10 + s.rng.Intn(6)
	if numClaims > len(messages) {
		numClaims = len(messages)
	}

	claimsCount := 0
	citationsCount := 0
	for c := 0; c < numClaims; c++ {
		msg := messages[s.rng.Intn(len(messages))]
		claimType := entity.ClaimTypes[s.rng.Intn(len(entity.ClaimTypes))]
		claim := &entity.Claim{
			Id:         uuid.New(),
			MissionId:  mission.Id,
			MessageId:  msg.Id,
			ClaimText:  fmt.Sprintf("Research indicates measurable effects relevant to %s.", strings.ToLower(mission.Title)),
			ClaimType:  claimType,
			Confidence: clampScore(s.claimConfidence(claimType)),
			IsFlagged:  s.rng.Float64() < constant.FlagProbability,
			CreatedAt:  msg.CreatedAt,
		}
		if err := uow.ClaimRepository().Create(ctx, claim); err != nil {
			return 0, 0, err
		}
		claimsCount++
		res.ClaimsCreated++

		if s.rng.Float64() < constant.SeedCiteProbabilty && len(sources) > 0 {
			source := sources[s.rng.Intn(len(sources))]
			citation := &entity.Citation{
				Id:           uuid.New(),
				ClaimId:      claim.Id,
				SourceId:     source.Id,
				Snippet:      fmt.Sprintf("Findings published by %s support this assessment.", source.Publisher),
				WhyItMatters: "Independent research strengthens the panel's reasoning on this point.",
				CreatedAt:    msg.CreatedAt,
			}
			if err := uow.CitationRepository().Create(ctx, citation); err != nil {
				return 0, 0, err
			}
			citationsCount++
			res.CitationsCreated++
		}
	}
	return claimsCount, citationsCount, nil
}

func (s *seedService) seedScoreAndCard(ctx context.Context, uow unitofwork.UnitOfWork, mission *entity.Mission) error {
	evidenceScore := 55 + s.rng.Intn(25)
	actionScore := 50 + s.rng.Intn(30)
	clarityScore := 65 + s.rng.Intn(20)

	score := &entity.Score{
		MissionId:          mission.Id,
		EvidenceScore:      clampScore(evidenceScore),
		ActionabilityScore: clampScore(actionScore),
		RiskScore:          clampScore(30 + s.rng.Intn(30)),
		ClarityScore:       clampScore(clarityScore),
		OverallScore:       clampScore((evidenceScore + actionScore + clarityScore) / 3),
		CitationCoverage:   clampScore(60 + s.rng.Intn(20)),
		FlaggedClaimRate:   clampScore(s.rng.Intn(5)),
	}
	if err := uow.ScoreRepository().Upsert(ctx, score); err != nil {
		return err
	}

	card := &entity.SolutionCard{
		Id:                  uuid.New(),
		MissionId:           mission.Id,
		Title:               fmt.Sprintf("Recommended approach: %s", mission.Title),
		Summary:             "After 5 rounds of structured debate, the panel converged on a phased, evidence-based approach with clear success metrics.",
		Content:             "This recommendation emerged from multi-perspective debate covering problem definition, proposals, stress testing, convergence, and implementation planning.",
		IntendedOwner:       "Government agencies and implementing organizations",
		Timeline:            fmt.Sprintf("%d months pilot, 2-3 years full scale", 6+s.rng.Intn(18)),
		CostBand:            seeddata.CostBands[s.rng.Intn(len(seeddata.CostBands))],
		StaffingAssumptions: fmt.Sprintf("%d FTE during pilot phase", 3+s.rng.Intn(7)),
		RisksMitigations:    "Funding continuity and political transitions are the main risks. Mitigated through bipartisan support structures and institutional embedding.",
		SuccessMetrics: []string{
			"Primary outcome improvement within 12 months",
			"Stakeholder satisfaction above 70%",
			"Cost per outcome within benchmark range",
		},
		IsPublished:            true,
		DecisionSummary:        fmt.Sprintf("The panel recommends a targeted pilot for %s, scaling on evidence.", strings.ToLower(mission.Title)),
		WhyThisOverAlternative: "The phased path balances urgency with rigor and allows local adaptation before committing at scale.",
		ImplementationSteps: []string{
			"Site selection and partner agreements",
			"Baseline measurement",
			"Staff hiring and training",
			"Soft launch with first cohort",
			"Six-month evaluation checkpoint",
			"Scale decision",
		},
		First30DaysPlan: "Finalize partner agreements, collect baseline data, begin hiring, and launch stakeholder communications.",
		CreatedAt:       *mission.CompletedAt,
	}
	return uow.SolutionCardRepository().Create(ctx, card)
}

func (s *seedService) writeStatus(ctx context.Context, uow unitofwork.UnitOfWork, existing *entity.SystemStatus) error {
	now := time.Now()
	if existing == nil {
		existing = &entity.SystemStatus{Id: uuid.New(), BudgetState: "ok"}
		existing.DebatesLive = 16
		existing.CitationCoverage24h = 65
		existing.GenerationEnabled = true
		existing.SeedVersion = constant.SeedVersion
		existing.SeededAt = &now
		existing.LastUpdated = now
		return uow.SystemStatusRepository().Create(ctx, existing)
	}
	existing.DebatesLive = 16
	existing.CitationCoverage24h = 65
	existing.GenerationEnabled = true
	existing.SeedVersion = constant.SeedVersion
	existing.SeededAt = &now
	existing.LastUpdated = now
	return uow.SystemStatusRepository().Update(ctx, existing)
}
