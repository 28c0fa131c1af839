package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"signal-for-good-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapContainsStaticAndMissionRoutes(t *testing.T) {
	store := newFakeStore()
	now := time.Now()
	live := &entity.Mission{
		Id:        uuid.New(),
		Title:     "Live mission",
		Status:    entity.MissionStatusLive,
		IsLive:    true,
		CreatedAt: now,
	}
	draft := &entity.Mission{
		Id:        uuid.New(),
		Title:     "Draft mission",
		Status:    entity.MissionStatusDraft,
		CreatedAt: now,
	}
	store.missions = append(store.missions, live, draft)

	svc := NewSitemapService(newFakeFactory(store), "https://signalforgood.com/")
	out, err := svc.GetSitemap(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, `<?xml`)
	assert.Contains(t, out, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, out, "<loc>https://signalforgood.com/</loc>")
	assert.Contains(t, out, "<loc>https://signalforgood.com/missions</loc>")
	assert.Contains(t, out, "<loc>https://signalforgood.com/donate</loc>")

	assert.Contains(t, out, fmt.Sprintf("https://signalforgood.com/missions/%s", live.Id))
	assert.NotContains(t, out, draft.Id.String())
}

func TestSitemapIsCached(t *testing.T) {
	store := newFakeStore()
	svc := NewSitemapService(newFakeFactory(store), "https://signalforgood.com")

	first, err := svc.GetSitemap(context.Background())
	require.NoError(t, err)

	// Missions added after the first render do not appear until expiry.
	store.missions = append(store.missions, &entity.Mission{
		Id:        uuid.New(),
		Status:    entity.MissionStatusLive,
		IsLive:    true,
		CreatedAt: time.Now(),
	})

	second, err := svc.GetSitemap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
