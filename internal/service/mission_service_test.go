package service

import (
	"context"
	"math/rand"
	"testing"

	"signal-for-good-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	svc := NewSeedService(newFakeFactory(store), nopLogger{}, nil, rand.New(rand.NewSource(3)))
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)
	return store
}

func TestListBuckets(t *testing.T) {
	store := seededStore(t)
	svc := NewMissionService(newFakeFactory(store))

	buckets, err := svc.ListBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 4)

	slugs := map[string]bool{}
	for _, b := range buckets {
		slugs[b.Slug] = true
		assert.NotEmpty(t, b.Name)
	}
	assert.True(t, slugs["education"])
	assert.True(t, slugs["jobs"])
	assert.True(t, slugs["housing"])
	assert.True(t, slugs["health"])
}

func TestListMissionsFiltersByStatus(t *testing.T) {
	store := seededStore(t)
	svc := NewMissionService(newFakeFactory(store))

	live, err := svc.ListMissions(context.Background(), MissionListFilter{Status: "live", Limit: 100})
	require.NoError(t, err)
	assert.Len(t, live, 16)
	for _, m := range live {
		assert.True(t, m.IsLive)
	}
}

func TestListMissionsUnknownBucketReturnsEmpty(t *testing.T) {
	store := seededStore(t)
	svc := NewMissionService(newFakeFactory(store))

	missions, err := svc.ListMissions(context.Background(), MissionListFilter{BucketSlug: "nonexistent"})
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestGetMissionDetailNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewMissionService(newFakeFactory(store))

	_, err := svc.GetMissionDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestGetMissionDetailAggregates(t *testing.T) {
	store := seededStore(t)
	svc := NewMissionService(newFakeFactory(store))

	var completed *entity.Mission
	for _, m := range store.missions {
		if m.Status == entity.MissionStatusCompleted {
			completed = m
			break
		}
	}
	require.NotNil(t, completed)

	detail, err := svc.GetMissionDetail(context.Background(), completed.Id)
	require.NoError(t, err)

	assert.Equal(t, completed.Id, detail.Mission.Id)
	assert.Equal(t, "completed", detail.Mission.Status)
	assert.NotEmpty(t, detail.Messages)
	require.NotNil(t, detail.Score)
	require.NotNil(t, detail.Card)
	require.NotNil(t, detail.Stats)

	for _, msg := range detail.Messages {
		assert.NotEmpty(t, msg.RoundName)
		assert.NotEmpty(t, msg.Lane)
	}

	// Messages arrive oldest first.
	for i := 1; i < len(detail.Messages); i++ {
		assert.False(t, detail.Messages[i].CreatedAt.Before(detail.Messages[i-1].CreatedAt))
	}
}

func TestListAgents(t *testing.T) {
	store := seededStore(t)
	store.agents[0].IsActive = false
	svc := NewMissionService(newFakeFactory(store))

	agents, err := svc.ListAgents(context.Background())
	require.NoError(t, err)
	assert.Len(t, agents, len(store.agents)-1)
}
