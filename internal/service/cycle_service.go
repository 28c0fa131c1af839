package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"signal-for-good-be/internal/constant"
	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"
	"signal-for-good-be/internal/seeddata"
	"signal-for-good-be/pkg/events"
	"signal-for-good-be/pkg/llm"
	pktNats "signal-for-good-be/pkg/nats"

	"github.com/google/uuid"
)

type ICycleService interface {
	// RunCycle advances every live mission by at most one pass. Safe to call
	// concurrently: per-mission leases keep overlapping invocations from
	// double-advancing a round.
	RunCycle(ctx context.Context) (*dto.RunCycleResponse, error)
}

type cycleService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	eventPublisher *pktNats.Publisher
	llmProvider    llm.LLMProvider
	leaseTTL       time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCycleService builds the generator. rng is injected so tests can pin the
// sequence; llmProvider may be nil, in which case template text is used.
func NewCycleService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
	llmProvider llm.LLMProvider,
	leaseTTL time.Duration,
	rng *rand.Rand,
) ICycleService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &cycleService{
		uowFactory:     uowFactory,
		logger:         log,
		eventPublisher: eventPublisher,
		llmProvider:    llmProvider,
		leaseTTL:       leaseTTL,
		rng:            rng,
	}
}

func (s *cycleService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *cycleService) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

func (s *cycleService) shuffleAgents(agents []*entity.Agent) []*entity.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Agent, len(agents))
	copy(out, agents)
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func (s *cycleService) RunCycle(ctx context.Context) (*dto.RunCycleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.SystemStatusRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil || !status.GenerationEnabled {
		return &dto.RunCycleResponse{Skipped: true, Reason: "generation_disabled"}, nil
	}

	startedAt := time.Now()
	genLog := &entity.GenerationLog{
		Id:        uuid.New(),
		CycleType: "full",
		StartedAt: startedAt,
		Status:    entity.GenerationStatusRunning,
	}
	if err := uow.GenerationLogRepository().Create(ctx, genLog); err != nil {
		return nil, err
	}

	res := &dto.RunCycleResponse{}

	liveMissions, err := uow.MissionRepository().FindAll(ctx, specification.LiveMissions{})
	if err != nil {
		s.finishLog(ctx, genLog, res, startedAt)
		return nil, err
	}

	if len(liveMissions) == 0 {
		s.finishLog(ctx, genLog, res, startedAt)
		return res, nil
	}

	agents, err := uow.AgentRepository().FindAll(ctx, specification.ActiveAgents{})
	if err != nil {
		s.finishLog(ctx, genLog, res, startedAt)
		return nil, err
	}

	for _, mission := range liveMissions {
		if err := s.advanceMission(ctx, mission, agents, res); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("mission %s: %v", mission.Id, err))
			s.logger.Error("cycle", "mission advance failed", map[string]interface{}{
				"mission_id": mission.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	// Refresh the public heartbeat numbers.
	liveCount, err := uow.MissionRepository().Count(ctx, specification.LiveMissions{})
	if err == nil {
		status.DebatesLive = int(liveCount)
		status.MessagesLast10Min = res.MessagesCreated
		status.LastUpdated = time.Now()
		if updErr := uow.SystemStatusRepository().Update(ctx, status); updErr != nil {
			s.logger.Warn("cycle", "system status update failed", map[string]interface{}{"error": updErr.Error()})
		}
	}

	s.finishLog(ctx, genLog, res, startedAt)

	if s.eventPublisher != nil {
		logStatus := string(entity.GenerationStatusCompleted)
		if len(res.Errors) > 0 {
			logStatus = string(entity.GenerationStatusCompletedWithErrors)
		}
		evt := events.NewCycleFinished(res.MissionsTouched, res.MessagesCreated, logStatus)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("cycle", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return res, nil
}

func (s *cycleService) finishLog(ctx context.Context, genLog *entity.GenerationLog, res *dto.RunCycleResponse, startedAt time.Time) {
	finishedAt := time.Now()
	genLog.FinishedAt = &finishedAt
	genLog.DurationMs = finishedAt.Sub(startedAt).Milliseconds()
	genLog.MissionsTouched = res.MissionsTouched
	genLog.MessagesCreated = res.MessagesCreated
	genLog.ClaimsCreated = res.ClaimsCreated
	genLog.CitationsCreated = res.CitationsCreated
	genLog.Errors = res.Errors
	genLog.Status = entity.GenerationStatusCompleted
	if len(res.Errors) > 0 {
		genLog.Status = entity.GenerationStatusCompletedWithErrors
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.GenerationLogRepository().Update(ctx, genLog); err != nil {
		s.logger.Error("cycle", "generation log update failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *cycleService) advanceMission(ctx context.Context, mission *entity.Mission, agents []*entity.Agent, res *dto.RunCycleResponse) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	acquired, err := uow.MissionLeaseRepository().Acquire(ctx, mission.Id, s.leaseTTL)
	if err != nil {
		return err
	}
	if !acquired {
		// Another worker holds the mission.
		return nil
	}
	defer func() {
		if relErr := uow.MissionLeaseRepository().Release(ctx, mission.Id); relErr != nil {
			s.logger.Warn("cycle", "lease release failed", map[string]interface{}{
				"mission_id": mission.Id.String(),
				"error":      relErr.Error(),
			})
		}
	}()

	currentRound, err := uow.DebateMessageRepository().MaxRound(ctx, mission.Id)
	if err != nil {
		return err
	}
	if currentRound == 0 {
		currentRound = 1
	}

	roundCount, err := uow.DebateMessageRepository().Count(ctx,
		specification.ByMission{MissionID: mission.Id},
		specification.ByRound{Round: currentRound},
	)
	if err != nil {
		return err
	}

	nextRound := currentRound
	if roundCount >= constant.MessagesPerRound {
		nextRound = currentRound + 1
	}

	if nextRound > constant.MaxRounds {
		return s.finalizeMission(ctx, uow, mission, res)
	}

	return s.generateRound(ctx, uow, mission, agents, nextRound, res)
}

func (s *cycleService) finalizeMission(ctx context.Context, uow unitofwork.UnitOfWork, mission *entity.Mission, res *dto.RunCycleResponse) error {
	now := time.Now()
	mission.Status = entity.MissionStatusCompleted
	mission.IsLive = false
	mission.CompletedAt = &now
	if err := uow.MissionRepository().Update(ctx, mission); err != nil {
		return err
	}

	evidenceScore := 60 + s.intn(25)
	actionScore := 55 + s.intn(25)
	clarityScore := 65 + s.intn(20)

	score := &entity.Score{
		MissionId:          mission.Id,
		EvidenceScore:      clampScore(evidenceScore),
		ActionabilityScore: clampScore(actionScore),
		ClarityScore:       clampScore(clarityScore),
		RiskScore:          clampScore(30 + s.intn(30)),
		OverallScore:       clampScore((evidenceScore + actionScore + clarityScore) / 3),
		CitationCoverage:   clampScore(60 + s.intn(20)),
		FlaggedClaimRate:   s.intn(5),
	}
	if err := uow.ScoreRepository().Upsert(ctx, score); err != nil {
		return err
	}

	card := &entity.SolutionCard{
		MissionId:           mission.Id,
		Title:               fmt.Sprintf("Recommended approach: %s", mission.Title),
		Summary:             "After 5 rounds of structured debate, the panel recommends a phased, evidence-based approach.",
		Content:             "This solution emerged from rigorous multi-agent debate covering problem definition, proposals, stress testing, convergence, and implementation planning.",
		IntendedOwner:       "Government agencies and implementing organizations",
		Timeline:            fmt.Sprintf("%d months pilot, 2-3 years full scale", 6+s.intn(18)),
		CostBand:            seeddata.CostBands[s.intn(len(seeddata.CostBands))],
		StaffingAssumptions: fmt.Sprintf("%d FTE pilot phase", 3+s.intn(7)),
		RisksMitigations:    "Key risks include funding continuity and political transitions. Mitigated through bipartisan structure and multi-year commitments.",
		SuccessMetrics: []string{
			"Target outcome improvement within 12 months",
			"Stakeholder satisfaction > 70%",
			"Cost-effectiveness within benchmark",
		},
		IsPublished:            true,
		DecisionSummary:        fmt.Sprintf("The evidence supports a targeted pilot approach for %s.", strings.ToLower(mission.Title)),
		WhyThisOverAlternative: "This path balances urgency with evidence rigor and allows local adaptation.",
		ImplementationSteps: []string{
			"Site selection", "Baseline measurement", "Team hiring",
			"Pilot launch", "Evaluation", "Scale decision",
		},
		First30DaysPlan: "Partner engagement, baseline data, hiring, communications launch.",
	}
	if err := uow.SolutionCardRepository().Create(ctx, card); err != nil {
		return err
	}

	res.MissionsTouched++

	if s.eventPublisher != nil {
		evt := events.NewMissionCompleted(mission.Id.String(), score.OverallScore)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("cycle", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (s *cycleService) generateRound(ctx context.Context, uow unitofwork.UnitOfWork, mission *entity.Mission, agents []*entity.Agent, round int, res *dto.RunCycleResponse) error {
	numMessages := constant.MinCycleMessages + s.intn(constant.MaxCycleMessages-constant.MinCycleMessages+1)
	shuffled := s.shuffleAgents(agents)
	if numMessages > len(shuffled) {
		numMessages = len(shuffled)
	}
	if numMessages == 0 {
		return fmt.Errorf("no active agents")
	}
	selected := shuffled[:numMessages]

	generated := s.generateWithLLM(ctx, mission, selected, round, numMessages)

	now := time.Now()
	createdMessages := 0
	for m := 0; m < numMessages; m++ {
		lane := entity.Lanes[m%len(entity.Lanes)]
		content := seeddata.FallbackCycleContent(round, mission.Title)
		if m < len(generated) && generated[m] != "" {
			content = generated[m]
		}

		msg := &entity.DebateMessage{
			Id:          uuid.New(),
			MissionId:   mission.Id,
			AgentId:     selected[m].Id,
			RoundNumber: round,
			Lane:        lane,
			Content:     content,
			// Backdate so the round reads as a conversation, oldest first.
			CreatedAt: now.Add(-time.Duration(numMessages-m) * 30 * time.Second),
		}
		if err := uow.DebateMessageRepository().Create(ctx, msg); err != nil {
			return err
		}
		res.MessagesCreated++
		createdMessages++

		if s.chance(constant.ClaimProbability) {
			claim := &entity.Claim{
				Id:         uuid.New(),
				MissionId:  mission.Id,
				MessageId:  msg.Id,
				ClaimText:  fmt.Sprintf("Analytical finding regarding %s based on available research.", strings.ToLower(mission.Title)),
				ClaimType:  entity.ClaimTypes[s.intn(len(entity.ClaimTypes))],
				Confidence: clampScore(40 + s.intn(40)),
			}
			if err := uow.ClaimRepository().Create(ctx, claim); err != nil {
				return err
			}
			res.ClaimsCreated++

			if s.chance(constant.CiteProbability) {
				sources, err := uow.SourceRepository().FindAll(ctx, specification.Limit{Count: 5})
				if err != nil {
					return err
				}
				if len(sources) > 0 {
					citation := &entity.Citation{
						Id:       uuid.New(),
						ClaimId:  claim.Id,
						SourceId: sources[s.intn(len(sources))].Id,
						Snippet:  "Supporting evidence from published research.",
					}
					if err := uow.CitationRepository().Create(ctx, citation); err != nil {
						return err
					}
					res.CitationsCreated++
				}
			}
		}
	}

	stats := &entity.DebateStats{
		MissionId:        mission.Id,
		LastMessageAt:    &now,
		MessagesLastHour: createdMessages,
	}
	claimsCount, err := uow.ClaimRepository().Count(ctx, specification.ByMission{MissionID: mission.Id})
	if err == nil {
		stats.ClaimsCount = int(claimsCount)
		citationsCount, citErr := uow.CitationRepository().CountForMission(ctx, mission.Id)
		if citErr == nil && claimsCount > 0 {
			stats.CitationCoverage = clampScore(int((citationsCount*100 + claimsCount/2) / claimsCount))
		}
	}
	if err := uow.DebateStatsRepository().Upsert(ctx, stats); err != nil {
		return err
	}

	res.MissionsTouched++

	if s.eventPublisher != nil {
		evt := events.NewMissionAdvanced(mission.Id.String(), round, createdMessages)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("cycle", "event publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

type generatedMessage struct {
	Content string `json:"content"`
	Lane    string `json:"lane"`
}

// generateWithLLM asks the model for one message per agent. Any failure
// returns nil and the caller falls back to template text.
func (s *cycleService) generateWithLLM(ctx context.Context, mission *entity.Mission, selected []*entity.Agent, round, numMessages int) []string {
	if s.llmProvider == nil {
		return nil
	}

	var agentContext strings.Builder
	for i, agent := range selected {
		fmt.Fprintf(&agentContext, "Agent %d: %s (%s)\n", i+1, agent.Name, agent.Role)
	}

	prompt := fmt.Sprintf(`You are generating debate messages for a policy debate platform called Signal For Good.

Topic: %q
Current Round: %d - %s
Agents participating:
%s
Generate exactly %d debate messages, one per agent, as a JSON array.
Each message should be 2-3 sentences, substantive, and cite general research findings without inventing specific statistics.
If mentioning numbers, label them as estimates.

Format: [{"content": "message text", "lane": "proposal|support|counter"}]
Alternate lanes: first message "proposal", then alternate "support" and "counter".
Keep a neutral, analytical, informational tone. Not advice. Output valid JSON only.`,
		mission.Title, round, constant.RoundNames[round-1], agentContext.String(), numMessages)

	raw, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.8))
	if err != nil {
		s.logger.Warn("cycle", "llm generation failed, using templates", map[string]interface{}{
			"mission_id": mission.Id.String(),
			"error":      err.Error(),
		})
		return nil
	}

	// Models sometimes wrap JSON in prose or fences.
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil
	}

	var parsed []generatedMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return nil
	}

	out := make([]string, 0, len(parsed))
	for _, p := range parsed {
		out = append(out, p.Content)
	}
	return out
}
