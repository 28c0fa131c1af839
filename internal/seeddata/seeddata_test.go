package seeddata

import (
	"math/rand"
	"strings"
	"testing"

	"signal-for-good-be/internal/entity"
)

func TestCatalogCompleteness(t *testing.T) {
	for _, slug := range entity.AllBuckets {
		if got := len(TopicsByBucket[slug]); got != 20 {
			t.Errorf("bucket %s: want 20 topics, got %d", slug, got)
		}
		if got := len(SourcesByBucket[slug]); got != 30 {
			t.Errorf("bucket %s: want 30 sources, got %d", slug, got)
		}
	}
	if len(Panel) != 12 {
		t.Errorf("want 12 panel agents, got %d", len(Panel))
	}
}

func TestCatalogFieldsNonEmpty(t *testing.T) {
	for slug, topics := range TopicsByBucket {
		for _, topic := range topics {
			if topic.Title == "" || topic.Question == "" || topic.Hook == "" {
				t.Errorf("bucket %s: incomplete topic %+v", slug, topic)
			}
		}
	}
	for slug, sources := range SourcesByBucket {
		for _, src := range sources {
			if src.Title == "" || src.Publisher == "" || !strings.HasPrefix(src.URL, "https://") {
				t.Errorf("bucket %s: incomplete source %+v", slug, src)
			}
		}
	}
}

func TestMessageContent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		round int
		lane  entity.Lane
	}{
		{"round 1 proposal", 1, entity.LaneProposal},
		{"round 2 support", 2, entity.LaneSupport},
		{"round 3 counter", 3, entity.LaneCounter},
		{"round 4 proposal", 4, entity.LaneProposal},
		{"round 5 counter", 5, entity.LaneCounter},
		{"out of range round", 9, entity.LaneProposal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MessageContent(rng, "Phone bans in K-12 classrooms", tt.round, tt.lane)
			if got == "" {
				t.Fatal("empty message content")
			}
			if strings.Contains(got, "{topic}") {
				t.Errorf("placeholder not substituted: %q", got)
			}
		})
	}
}

func TestFallbackCycleContent(t *testing.T) {
	got := FallbackCycleContent(3, "Rent control expansion effectiveness")
	if !strings.Contains(got, "Round 3") {
		t.Errorf("missing round number: %q", got)
	}
	if !strings.Contains(got, "Rent control expansion effectiveness") {
		t.Errorf("missing topic: %q", got)
	}
}
