package entity

import (
	"time"

	"github.com/google/uuid"
)

// Score is a 1:1 quality rollup per mission. All fields except RevisionCount
// are integer percentages in [0,100].
type Score struct {
	Id                 uuid.UUID
	MissionId          uuid.UUID
	EvidenceScore      int
	ActionabilityScore int
	RiskScore          int
	ClarityScore       int
	OverallScore       int // floor mean of evidence/actionability/clarity
	CitationCoverage   int
	FlaggedClaimRate   int
	RevisionCount      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type SolutionCard struct {
	Id                     uuid.UUID
	MissionId              uuid.UUID
	Title                  string
	Summary                string
	Content                string
	IntendedOwner          string
	Timeline               string
	CostBand               string
	StaffingAssumptions    string
	RisksMitigations       string
	SuccessMetrics         []string
	DecisionSummary        string
	WhyThisOverAlternative string
	ImplementationSteps    []string
	First30DaysPlan        string
	IsPublished            bool
	CreatedAt              time.Time
}

// DebateStats is a denormalized per-mission rollup refreshed after each
// generator pass.
type DebateStats struct {
	Id               uuid.UUID
	MissionId        uuid.UUID
	LastMessageAt    *time.Time
	MessagesLastHour int
	ClaimsCount      int
	CitationCoverage int
	UpdatedAt        time.Time
}
