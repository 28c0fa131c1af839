package service

import (
	"context"
	"math/rand"
	"testing"

	"signal-for-good-be/internal/constant"
	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/seeddata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeedService(store *fakeStore) ISeedService {
	return NewSeedService(newFakeFactory(store), nopLogger{}, nil, rand.New(rand.NewSource(7)))
}

func TestSeedPopulatesFullCatalog(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	res, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AlreadySeeded)
	assert.Equal(t, constant.SeedVersion, res.Version)

	assert.Len(t, store.buckets, 4)
	assert.Len(t, store.agents, len(seeddata.Panel))
	assert.Len(t, store.packs, 4)
	assert.Equal(t, 120, res.SourcesCreated)
	assert.Equal(t, 80, res.MissionsCreated)

	// 4 live missions per bucket.
	liveCount := 0
	for _, m := range store.missions {
		if m.IsLive {
			assert.Equal(t, entity.MissionStatusLive, m.Status)
			liveCount++
		}
	}
	assert.Equal(t, 16, liveCount)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	first, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.False(t, first.AlreadySeeded)

	second, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, second.AlreadySeeded)
	assert.Equal(t, constant.SeedVersion, second.Version)
	assert.Zero(t, second.MissionsCreated)

	// Nothing was written twice.
	assert.Len(t, store.missions, 80)
	assert.Len(t, store.agents, len(seeddata.Panel))
}

func TestSeedReseedsOnVersionBump(t *testing.T) {
	store := newFakeStore()
	store.status = &entity.SystemStatus{Id: uuid.New(), SeedVersion: "v1-2025-11-01"}
	svc := newTestSeedService(store)

	res, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AlreadySeeded)
	assert.Equal(t, constant.SeedVersion, store.status.SeedVersion)
}

func TestSeedCompletedMissionsHaveScoresAndCards(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	completed := 0
	for _, m := range store.missions {
		if m.Status != entity.MissionStatusCompleted {
			continue
		}
		completed++
		require.NotNil(t, m.CompletedAt, "completed mission missing timestamp")

		score := store.scores[m.Id]
		require.NotNil(t, score, "completed mission missing score")
		assert.GreaterOrEqual(t, score.OverallScore, 0)
		assert.LessOrEqual(t, score.OverallScore, 100)
		assert.Equal(t, (score.EvidenceScore+score.ActionabilityScore+score.ClarityScore)/3, score.OverallScore)
	}
	assert.Equal(t, 64, completed)
	assert.Len(t, store.cards, 64)

	for _, card := range store.cards {
		assert.Contains(t, seeddata.CostBands, card.CostBand)
		assert.True(t, card.IsPublished)
		assert.NotEmpty(t, card.ImplementationSteps)
	}
}

func TestSeedLiveMissionsHaveNoScore(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	for _, m := range store.missions {
		if m.IsLive {
			assert.Nil(t, store.scores[m.Id])
			assert.Nil(t, m.CompletedAt)
		}
	}
}

func TestSeedMessageRoundsAndLanes(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	perMissionRound := map[uuid.UUID]map[int]int{}
	for _, msg := range store.messages {
		assert.GreaterOrEqual(t, msg.RoundNumber, 1)
		assert.LessOrEqual(t, msg.RoundNumber, constant.MaxRounds)
		assert.Contains(t, entity.Lanes, msg.Lane)
		assert.NotEmpty(t, msg.Content)
		assert.NotContains(t, msg.Content, "{topic}")

		if perMissionRound[msg.MissionId] == nil {
			perMissionRound[msg.MissionId] = map[int]int{}
		}
		perMissionRound[msg.MissionId][msg.RoundNumber]++
	}

	for _, rounds := range perMissionRound {
		for _, count := range rounds {
			assert.GreaterOrEqual(t, count, constant.MinCycleMessages)
			assert.LessOrEqual(t, count, constant.MaxCycleMessages)
		}
	}
}

func TestSeedClaimsAndCitations(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	res, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Greater(t, res.ClaimsCreated, 0)
	assert.Greater(t, res.CitationsCreated, 0)
	assert.Less(t, res.CitationsCreated, res.ClaimsCreated)

	claimIds := map[uuid.UUID]bool{}
	for _, c := range store.claims {
		assert.GreaterOrEqual(t, c.Confidence, 0)
		assert.LessOrEqual(t, c.Confidence, 100)
		assert.Contains(t, entity.ClaimTypes, c.ClaimType)
		claimIds[c.Id] = true
	}
	for _, cit := range store.citations {
		assert.True(t, claimIds[cit.ClaimId], "citation references unknown claim")
	}
}

func TestSeedWritesStatusRow(t *testing.T) {
	store := newFakeStore()
	svc := newTestSeedService(store)

	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	require.NotNil(t, store.status)
	assert.Equal(t, 16, store.status.DebatesLive)
	assert.Equal(t, 65, store.status.CitationCoverage24h)
	assert.True(t, store.status.GenerationEnabled)
	assert.Equal(t, constant.SeedVersion, store.status.SeedVersion)
	assert.NotNil(t, store.status.SeededAt)
}
