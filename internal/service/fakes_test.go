package service

import (
	"context"
	"sort"
	"time"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/pkg/logger"
	"signal-for-good-be/internal/repository/contract"
	"signal-for-good-be/internal/repository/specification"
	"signal-for-good-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the database, shared by all fake
// repositories so service tests can run without Postgres.
type fakeStore struct {
	buckets   []*entity.Bucket
	missions  []*entity.Mission
	agents    []*entity.Agent
	messages  []*entity.DebateMessage
	claims    []*entity.Claim
	citations []*entity.Citation
	packs     []*entity.SourcePack
	sources   []*entity.Source
	scores    map[uuid.UUID]*entity.Score
	stats     map[uuid.UUID]*entity.DebateStats
	cards     []*entity.SolutionCard
	status    *entity.SystemStatus
	genLogs   []*entity.GenerationLog
	leases    map[uuid.UUID]time.Time
	intents   []*entity.DonationIntent
	events    []*entity.DonationEvent
	admins    []*entity.AdminUser

	// leaseDenied forces Acquire to report the lease as held.
	leaseDenied bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		scores: map[uuid.UUID]*entity.Score{},
		stats:  map[uuid.UUID]*entity.DebateStats{},
		leases: map[uuid.UUID]time.Time{},
	}
}

type fakeFactory struct{ store *fakeStore }

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct{ store *fakeStore }

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) BucketRepository() contract.BucketRepository   { return &fakeBucketRepo{u.store} }
func (u *fakeUow) MissionRepository() contract.MissionRepository { return &fakeMissionRepo{u.store} }
func (u *fakeUow) AgentRepository() contract.AgentRepository     { return &fakeAgentRepo{u.store} }
func (u *fakeUow) DebateMessageRepository() contract.DebateMessageRepository {
	return &fakeMessageRepo{u.store}
}
func (u *fakeUow) ClaimRepository() contract.ClaimRepository       { return &fakeClaimRepo{u.store} }
func (u *fakeUow) CitationRepository() contract.CitationRepository { return &fakeCitationRepo{u.store} }
func (u *fakeUow) SourceRepository() contract.SourceRepository     { return &fakeSourceRepo{u.store} }
func (u *fakeUow) ScoreRepository() contract.ScoreRepository       { return &fakeScoreRepo{u.store} }
func (u *fakeUow) SolutionCardRepository() contract.SolutionCardRepository {
	return &fakeCardRepo{u.store}
}
func (u *fakeUow) DebateStatsRepository() contract.DebateStatsRepository {
	return &fakeStatsRepo{u.store}
}
func (u *fakeUow) SystemStatusRepository() contract.SystemStatusRepository {
	return &fakeStatusRepo{u.store}
}
func (u *fakeUow) GenerationLogRepository() contract.GenerationLogRepository {
	return &fakeGenLogRepo{u.store}
}
func (u *fakeUow) MissionLeaseRepository() contract.MissionLeaseRepository {
	return &fakeLeaseRepo{u.store}
}
func (u *fakeUow) DonationRepository() contract.DonationRepository {
	return &fakeDonationRepo{u.store}
}
func (u *fakeUow) AdminUserRepository() contract.AdminUserRepository {
	return &fakeAdminRepo{u.store}
}

// Specification matching. The fakes only understand the handful of
// specifications the services actually use.

func missionMatches(m *entity.Mission, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.LiveMissions:
			if m.Status != entity.MissionStatusLive || !m.IsLive {
				return false
			}
		case specification.PublicMissions:
			if m.Status != entity.MissionStatusLive && m.Status != entity.MissionStatusCompleted {
				return false
			}
		case specification.ByID:
			if m.Id != spec.ID {
				return false
			}
		case specification.FilterBy:
			switch spec.Field {
			case "status":
				if string(m.Status) != spec.Value.(string) {
					return false
				}
			case "bucket_id":
				if m.BucketId != spec.Value.(uuid.UUID) {
					return false
				}
			}
		}
	}
	return true
}

func messageMatches(m *entity.DebateMessage, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByMission:
			if m.MissionId != spec.MissionID {
				return false
			}
		case specification.ByRound:
			if m.RoundNumber != spec.Round {
				return false
			}
		}
	}
	return true
}

type fakeBucketRepo struct{ store *fakeStore }

func (r *fakeBucketRepo) Create(ctx context.Context, bucket *entity.Bucket) error {
	r.store.buckets = append(r.store.buckets, bucket)
	return nil
}

func (r *fakeBucketRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bucket, error) {
	for _, b := range r.store.buckets {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.FilterBy); ok && spec.Field == "slug" {
				if string(b.Slug) != spec.Value.(string) {
					match = false
				}
			}
		}
		if match {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBucketRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bucket, error) {
	return r.store.buckets, nil
}

type fakeMissionRepo struct{ store *fakeStore }

func (r *fakeMissionRepo) Create(ctx context.Context, mission *entity.Mission) error {
	r.store.missions = append(r.store.missions, mission)
	return nil
}

func (r *fakeMissionRepo) Update(ctx context.Context, mission *entity.Mission) error {
	for i, m := range r.store.missions {
		if m.Id == mission.Id {
			r.store.missions[i] = mission
			return nil
		}
	}
	return nil
}

func (r *fakeMissionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Mission, error) {
	for _, m := range r.store.missions {
		if missionMatches(m, specs) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMissionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Mission, error) {
	var out []*entity.Mission
	for _, m := range r.store.missions {
		if missionMatches(m, specs) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMissionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeAgentRepo struct{ store *fakeStore }

func (r *fakeAgentRepo) Create(ctx context.Context, agent *entity.Agent) error {
	r.store.agents = append(r.store.agents, agent)
	return nil
}

func (r *fakeAgentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	var out []*entity.Agent
	for _, a := range r.store.agents {
		active := true
		for _, s := range specs {
			if _, ok := s.(specification.ActiveAgents); ok && !a.IsActive {
				active = false
			}
		}
		if active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAgentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeMessageRepo struct{ store *fakeStore }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.DebateMessage) error {
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DebateMessage, error) {
	var out []*entity.DebateMessage
	for _, m := range r.store.messages {
		if messageMatches(m, specs) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeMessageRepo) MaxRound(ctx context.Context, missionId uuid.UUID) (int, error) {
	max := 0
	for _, m := range r.store.messages {
		if m.MissionId == missionId && m.RoundNumber > max {
			max = m.RoundNumber
		}
	}
	return max, nil
}

type fakeClaimRepo struct{ store *fakeStore }

func (r *fakeClaimRepo) Create(ctx context.Context, claim *entity.Claim) error {
	r.store.claims = append(r.store.claims, claim)
	return nil
}

func (r *fakeClaimRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Claim, error) {
	var out []*entity.Claim
	for _, c := range r.store.claims {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.ByMission); ok && c.MissionId != spec.MissionID {
				match = false
			}
		}
		if match {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClaimRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeCitationRepo struct{ store *fakeStore }

func (r *fakeCitationRepo) Create(ctx context.Context, citation *entity.Citation) error {
	r.store.citations = append(r.store.citations, citation)
	return nil
}

func (r *fakeCitationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Citation, error) {
	var out []*entity.Citation
	for _, c := range r.store.citations {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.ByClaims); ok {
				found := false
				for _, id := range spec.ClaimIDs {
					if c.ClaimId == id {
						found = true
						break
					}
				}
				if !found {
					match = false
				}
			}
		}
		if match {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCitationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeCitationRepo) CountForMission(ctx context.Context, missionId uuid.UUID) (int64, error) {
	claimIds := map[uuid.UUID]bool{}
	for _, c := range r.store.claims {
		if c.MissionId == missionId {
			claimIds[c.Id] = true
		}
	}
	var n int64
	for _, cit := range r.store.citations {
		if claimIds[cit.ClaimId] {
			n++
		}
	}
	return n, nil
}

type fakeSourceRepo struct{ store *fakeStore }

func (r *fakeSourceRepo) Create(ctx context.Context, source *entity.Source) error {
	r.store.sources = append(r.store.sources, source)
	return nil
}

func (r *fakeSourceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Source, error) {
	out := r.store.sources
	for _, s := range specs {
		if spec, ok := s.(specification.Limit); ok && len(out) > spec.Count {
			out = out[:spec.Count]
		}
	}
	return out, nil
}

func (r *fakeSourceRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.sources)), nil
}

func (r *fakeSourceRepo) CreatePack(ctx context.Context, pack *entity.SourcePack) error {
	r.store.packs = append(r.store.packs, pack)
	return nil
}

func (r *fakeSourceRepo) FindOnePack(ctx context.Context, specs ...specification.Specification) (*entity.SourcePack, error) {
	if len(r.store.packs) == 0 {
		return nil, nil
	}
	return r.store.packs[0], nil
}

type fakeScoreRepo struct{ store *fakeStore }

func (r *fakeScoreRepo) Upsert(ctx context.Context, score *entity.Score) error {
	r.store.scores[score.MissionId] = score
	return nil
}

func (r *fakeScoreRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Score, error) {
	for _, s := range specs {
		if spec, ok := s.(specification.ByMission); ok {
			return r.store.scores[spec.MissionID], nil
		}
	}
	return nil, nil
}

func (r *fakeScoreRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.scores)), nil
}

type fakeCardRepo struct{ store *fakeStore }

func (r *fakeCardRepo) Create(ctx context.Context, card *entity.SolutionCard) error {
	r.store.cards = append(r.store.cards, card)
	return nil
}

func (r *fakeCardRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SolutionCard, error) {
	for _, s := range specs {
		if spec, ok := s.(specification.ByMission); ok {
			for _, c := range r.store.cards {
				if c.MissionId == spec.MissionID {
					return c, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeCardRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.cards)), nil
}

type fakeStatsRepo struct{ store *fakeStore }

func (r *fakeStatsRepo) Upsert(ctx context.Context, stats *entity.DebateStats) error {
	r.store.stats[stats.MissionId] = stats
	return nil
}

func (r *fakeStatsRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DebateStats, error) {
	for _, s := range specs {
		if spec, ok := s.(specification.ByMission); ok {
			return r.store.stats[spec.MissionID], nil
		}
	}
	return nil, nil
}

type fakeStatusRepo struct{ store *fakeStore }

func (r *fakeStatusRepo) Get(ctx context.Context) (*entity.SystemStatus, error) {
	return r.store.status, nil
}

func (r *fakeStatusRepo) Create(ctx context.Context, status *entity.SystemStatus) error {
	r.store.status = status
	return nil
}

func (r *fakeStatusRepo) Update(ctx context.Context, status *entity.SystemStatus) error {
	r.store.status = status
	return nil
}

type fakeGenLogRepo struct{ store *fakeStore }

func (r *fakeGenLogRepo) Create(ctx context.Context, log *entity.GenerationLog) error {
	r.store.genLogs = append(r.store.genLogs, log)
	return nil
}

func (r *fakeGenLogRepo) Update(ctx context.Context, log *entity.GenerationLog) error {
	for i, l := range r.store.genLogs {
		if l.Id == log.Id {
			r.store.genLogs[i] = log
			return nil
		}
	}
	return nil
}

func (r *fakeGenLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationLog, error) {
	return r.store.genLogs, nil
}

func (r *fakeGenLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.genLogs)), nil
}

type fakeLeaseRepo struct{ store *fakeStore }

func (r *fakeLeaseRepo) Acquire(ctx context.Context, missionId uuid.UUID, ttl time.Duration) (bool, error) {
	if r.store.leaseDenied {
		return false, nil
	}
	if exp, held := r.store.leases[missionId]; held && exp.After(time.Now()) {
		return false, nil
	}
	r.store.leases[missionId] = time.Now().Add(ttl)
	return true, nil
}

func (r *fakeLeaseRepo) Release(ctx context.Context, missionId uuid.UUID) error {
	delete(r.store.leases, missionId)
	return nil
}

type fakeDonationRepo struct{ store *fakeStore }

func (r *fakeDonationRepo) CreateIntent(ctx context.Context, intent *entity.DonationIntent) error {
	r.store.intents = append(r.store.intents, intent)
	return nil
}

func (r *fakeDonationRepo) UpdateIntent(ctx context.Context, intent *entity.DonationIntent) error {
	for i, it := range r.store.intents {
		if it.Id == intent.Id {
			r.store.intents[i] = intent
			return nil
		}
	}
	return nil
}

func (r *fakeDonationRepo) FindOneIntent(ctx context.Context, specs ...specification.Specification) (*entity.DonationIntent, error) {
	for _, it := range r.store.intents {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.FilterBy); ok && spec.Field == "order_id" {
				if it.OrderId == nil || *it.OrderId != spec.Value.(string) {
					match = false
				}
			}
		}
		if match {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeDonationRepo) CountIntents(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, it := range r.store.intents {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.FilterBy); ok && spec.Field == "status" {
				if string(it.Status) != spec.Value.(string) {
					match = false
				}
			}
		}
		if match {
			n++
		}
	}
	return n, nil
}

func (r *fakeDonationRepo) CreateEvent(ctx context.Context, event *entity.DonationEvent) (bool, error) {
	for _, e := range r.store.events {
		if e.ProviderEventId == event.ProviderEventId {
			return false, nil
		}
	}
	r.store.events = append(r.store.events, event)
	return true, nil
}

func (r *fakeDonationRepo) CountEvents(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.events)), nil
}

type fakeAdminRepo struct{ store *fakeStore }

func (r *fakeAdminRepo) Create(ctx context.Context, admin *entity.AdminUser) error {
	r.store.admins = append(r.store.admins, admin)
	return nil
}

func (r *fakeAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	for _, a := range r.store.admins {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.FilterBy); ok && spec.Field == "email" {
				if a.Email != spec.Value.(string) {
					match = false
				}
			}
		}
		if match {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, a := range r.store.admins {
		match := true
		for _, s := range specs {
			if spec, ok := s.(specification.FilterBy); ok && spec.Field == "email" {
				if a.Email != spec.Value.(string) {
					match = false
				}
			}
		}
		if match {
			n++
		}
	}
	return n, nil
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
