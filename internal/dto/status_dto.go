package dto

import "time"

type SystemStatusResponse struct {
	DebatesLive         int        `json:"debates_live"`
	MessagesLast10Min   int        `json:"messages_last_10_min"`
	CitationCoverage24h int        `json:"citation_coverage_24h"`
	GenerationEnabled   bool       `json:"generation_enabled"`
	BudgetState         string     `json:"budget_state"`
	SeedVersion         string     `json:"seed_version"`
	SeededAt            *time.Time `json:"seeded_at"`
	LastUpdated         time.Time  `json:"last_updated"`
}
