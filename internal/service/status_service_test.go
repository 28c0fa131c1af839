package service

import (
	"context"
	"testing"
	"time"

	"signal-for-good-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusCreatesDefaultRow(t *testing.T) {
	store := newFakeStore()
	svc := NewStatusService(newFakeFactory(store))

	res, err := svc.GetStatus(context.Background())
	require.NoError(t, err)

	assert.False(t, res.GenerationEnabled)
	assert.Equal(t, "ok", res.BudgetState)
	assert.Empty(t, res.SeedVersion)
	require.NotNil(t, store.status)
}

func TestGetStatusIsCached(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	store.status = &entity.SystemStatus{
		Id:                uuid.New(),
		DebatesLive:       16,
		GenerationEnabled: true,
		BudgetState:       "ok",
		LastUpdated:       now,
	}
	svc := NewStatusService(newFakeFactory(store))

	first, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, first.DebatesLive)

	// A write behind the cache is invisible until expiry.
	store.status.DebatesLive = 20
	second, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 16, second.DebatesLive)
}

func TestIsGenerationEnabled(t *testing.T) {
	store := newFakeStore()
	svc := NewStatusService(newFakeFactory(store))

	enabled, err := svc.IsGenerationEnabled(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)

	store.status = &entity.SystemStatus{Id: uuid.New(), GenerationEnabled: true}
	enabled, err = svc.IsGenerationEnabled(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestCurrentSeedVersion(t *testing.T) {
	store := newFakeStore()
	svc := NewStatusService(newFakeFactory(store))

	version, err := svc.CurrentSeedVersion(context.Background())
	require.NoError(t, err)
	assert.Empty(t, version)

	store.status = &entity.SystemStatus{Id: uuid.New(), SeedVersion: "v2-2026-02-09"}
	version, err = svc.CurrentSeedVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2-2026-02-09", version)
}
