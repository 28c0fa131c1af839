package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"signal-for-good-be/internal/constant"
	"signal-for-good-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLiveMission(store *fakeStore, title string) *entity.Mission {
	now := time.Now()
	m := &entity.Mission{
		Id:        uuid.New(),
		BucketId:  uuid.New(),
		Title:     title,
		Status:    entity.MissionStatusLive,
		IsLive:    true,
		StartedAt: &now,
		CreatedAt: now,
	}
	store.missions = append(store.missions, m)
	return m
}

func seedPanel(store *fakeStore, n int) {
	for i := 0; i < n; i++ {
		store.agents = append(store.agents, &entity.Agent{
			Id:       uuid.New(),
			Name:     "Agent",
			Role:     "Panelist",
			IsActive: true,
		})
	}
}

func enableGeneration(store *fakeStore) {
	store.status = &entity.SystemStatus{
		Id:                uuid.New(),
		GenerationEnabled: true,
		BudgetState:       "ok",
	}
}

func newTestCycleService(store *fakeStore) ICycleService {
	return NewCycleService(
		newFakeFactory(store),
		nopLogger{},
		nil,
		nil,
		2*time.Minute,
		rand.New(rand.NewSource(42)),
	)
}

func TestRunCycleSkipsWhenGenerationDisabled(t *testing.T) {
	store := newFakeStore()
	store.status = &entity.SystemStatus{Id: uuid.New(), GenerationEnabled: false}
	svc := newTestCycleService(store)

	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "generation_disabled", res.Reason)
	assert.Empty(t, store.genLogs)
}

func TestRunCycleSkipsWhenNoStatusRow(t *testing.T) {
	store := newFakeStore()
	svc := newTestCycleService(store)

	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestRunCycleGeneratesFirstRound(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	mission := seedLiveMission(store, "Universal pre-K funding models")
	svc := newTestCycleService(store)

	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	assert.False(t, res.Skipped)
	assert.Equal(t, 1, res.MissionsTouched)
	assert.GreaterOrEqual(t, res.MessagesCreated, constant.MinCycleMessages)
	assert.LessOrEqual(t, res.MessagesCreated, constant.MaxCycleMessages)

	for _, msg := range store.messages {
		assert.Equal(t, mission.Id, msg.MissionId)
		assert.Equal(t, 1, msg.RoundNumber)
		assert.NotEmpty(t, msg.Content)
	}

	// Lanes cycle proposal, support, counter by position.
	assert.Equal(t, entity.LaneProposal, store.messages[0].Lane)
	assert.Equal(t, entity.LaneSupport, store.messages[1].Lane)
	assert.Equal(t, entity.LaneCounter, store.messages[2].Lane)

	// Backdated timestamps keep the round in conversation order.
	for i := 1; i < len(store.messages); i++ {
		assert.True(t, store.messages[i].CreatedAt.After(store.messages[i-1].CreatedAt))
	}

	stats := store.stats[mission.Id]
	require.NotNil(t, stats)
	assert.Equal(t, res.MessagesCreated, stats.MessagesLastHour)

	require.Len(t, store.genLogs, 1)
	assert.Equal(t, entity.GenerationStatusCompleted, store.genLogs[0].Status)
	assert.NotNil(t, store.genLogs[0].FinishedAt)
}

func TestRunCycleAdvancesToNextRoundWhenFull(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	mission := seedLiveMission(store, "Gig worker classification and protections")

	for i := 0; i < constant.MessagesPerRound; i++ {
		store.messages = append(store.messages, &entity.DebateMessage{
			Id:          uuid.New(),
			MissionId:   mission.Id,
			AgentId:     store.agents[i].Id,
			RoundNumber: 2,
			Lane:        entity.Lanes[i%3],
			Content:     "existing",
			CreatedAt:   time.Now().Add(-time.Hour),
		})
	}

	svc := newTestCycleService(store)
	_, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	maxRound := 0
	for _, m := range store.messages {
		if m.RoundNumber > maxRound {
			maxRound = m.RoundNumber
		}
	}
	assert.Equal(t, 3, maxRound)
}

func TestRunCycleStaysInPartialRound(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	mission := seedLiveMission(store, "Rent control expansion effectiveness")

	store.messages = append(store.messages, &entity.DebateMessage{
		Id:          uuid.New(),
		MissionId:   mission.Id,
		AgentId:     store.agents[0].Id,
		RoundNumber: 3,
		Lane:        entity.LaneProposal,
		Content:     "existing",
		CreatedAt:   time.Now().Add(-time.Hour),
	})

	svc := newTestCycleService(store)
	_, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	for _, m := range store.messages {
		assert.Equal(t, 3, m.RoundNumber)
	}
}

func TestRunCycleFinalizesAfterLastRound(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	mission := seedLiveMission(store, "School funding formula reform")

	for i := 0; i < constant.MessagesPerRound; i++ {
		store.messages = append(store.messages, &entity.DebateMessage{
			Id:          uuid.New(),
			MissionId:   mission.Id,
			AgentId:     store.agents[i].Id,
			RoundNumber: constant.MaxRounds,
			Lane:        entity.Lanes[i%3],
			Content:     "existing",
			CreatedAt:   time.Now().Add(-time.Hour),
		})
	}

	svc := newTestCycleService(store)
	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.MissionsTouched)
	assert.Equal(t, 0, res.MessagesCreated)

	assert.Equal(t, entity.MissionStatusCompleted, mission.Status)
	assert.False(t, mission.IsLive)
	require.NotNil(t, mission.CompletedAt)

	score := store.scores[mission.Id]
	require.NotNil(t, score)
	assert.GreaterOrEqual(t, score.EvidenceScore, 60)
	assert.Less(t, score.EvidenceScore, 85)
	assert.GreaterOrEqual(t, score.ActionabilityScore, 55)
	assert.Less(t, score.ActionabilityScore, 80)
	assert.GreaterOrEqual(t, score.ClarityScore, 65)
	assert.Less(t, score.ClarityScore, 85)
	assert.Equal(t, (score.EvidenceScore+score.ActionabilityScore+score.ClarityScore)/3, score.OverallScore)

	require.Len(t, store.cards, 1)
	assert.Equal(t, mission.Id, store.cards[0].MissionId)
	assert.True(t, store.cards[0].IsPublished)
	assert.Contains(t, store.cards[0].Title, mission.Title)
}

func TestRunCycleSkipsLeasedMission(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	seedLiveMission(store, "Minimum wage regional adjustment")
	store.leaseDenied = true

	svc := newTestCycleService(store)
	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, res.MissionsTouched)
	assert.Empty(t, store.messages)
	assert.Empty(t, res.Errors)
}

func TestRunCycleReleasesLease(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	mission := seedLiveMission(store, "Portable benefits systems")

	svc := newTestCycleService(store)
	_, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	_, held := store.leases[mission.Id]
	assert.False(t, held)
}

func TestRunCycleRecordsErrorsWithoutAgents(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedLiveMission(store, "Automation tax proposals")

	svc := newTestCycleService(store)
	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Errors, 1)
	require.Len(t, store.genLogs, 1)
	assert.Equal(t, entity.GenerationStatusCompletedWithErrors, store.genLogs[0].Status)
}

func TestRunCycleUpdatesSystemStatus(t *testing.T) {
	store := newFakeStore()
	enableGeneration(store)
	seedPanel(store, 8)
	seedLiveMission(store, "Green jobs transition planning")

	svc := newTestCycleService(store)
	res, err := svc.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.status.DebatesLive)
	assert.Equal(t, res.MessagesCreated, store.status.MessagesLast10Min)
}
