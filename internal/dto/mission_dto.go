package dto

import (
	"time"

	"github.com/google/uuid"
)

type BucketResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

type MissionResponse struct {
	Id           uuid.UUID  `json:"id"`
	BucketId     uuid.UUID  `json:"bucket_id"`
	Title        string     `json:"title"`
	CoreQuestion string     `json:"core_question"`
	DebateHook   string     `json:"debate_hook"`
	Status       string     `json:"status"`
	IsLive       bool       `json:"is_live"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DebateMessageResponse struct {
	Id          uuid.UUID `json:"id"`
	AgentId     uuid.UUID `json:"agent_id"`
	RoundNumber int       `json:"round_number"`
	RoundName   string    `json:"round_name"`
	Lane        string    `json:"lane"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClaimResponse struct {
	Id         uuid.UUID          `json:"id"`
	MessageId  uuid.UUID          `json:"message_id"`
	ClaimText  string             `json:"claim_text"`
	ClaimType  string             `json:"claim_type"`
	Confidence int                `json:"confidence"`
	IsFlagged  bool               `json:"is_flagged"`
	Citations  []CitationResponse `json:"citations"`
}

type CitationResponse struct {
	Id           uuid.UUID `json:"id"`
	SourceId     uuid.UUID `json:"source_id"`
	Snippet      string    `json:"snippet"`
	WhyItMatters string    `json:"why_it_matters,omitempty"`
}

type ScoreResponse struct {
	EvidenceScore      int `json:"evidence_score"`
	ActionabilityScore int `json:"actionability_score"`
	RiskScore          int `json:"risk_score"`
	ClarityScore       int `json:"clarity_score"`
	OverallScore       int `json:"overall_score"`
	CitationCoverage   int `json:"citation_coverage"`
	FlaggedClaimRate   int `json:"flagged_claim_rate"`
}

type SolutionCardResponse struct {
	Id                     uuid.UUID `json:"id"`
	Title                  string    `json:"title"`
	Summary                string    `json:"summary"`
	Content                string    `json:"content"`
	IntendedOwner          string    `json:"intended_owner"`
	Timeline               string    `json:"timeline"`
	CostBand               string    `json:"cost_band"`
	StaffingAssumptions    string    `json:"staffing_assumptions"`
	RisksMitigations       string    `json:"risks_mitigations"`
	SuccessMetrics         []string  `json:"success_metrics"`
	DecisionSummary        string    `json:"decision_summary"`
	WhyThisOverAlternative string    `json:"why_this_over_alternatives"`
	ImplementationSteps    []string  `json:"implementation_steps"`
	First30DaysPlan        string    `json:"first_30_days_plan"`
}

type DebateStatsResponse struct {
	LastMessageAt    *time.Time `json:"last_message_at"`
	MessagesLastHour int        `json:"messages_last_hour"`
	ClaimsCount      int        `json:"claims_count"`
	CitationCoverage int        `json:"citation_coverage"`
}

type MissionDetailResponse struct {
	Mission  MissionResponse         `json:"mission"`
	Messages []DebateMessageResponse `json:"messages"`
	Claims   []ClaimResponse         `json:"claims"`
	Score    *ScoreResponse          `json:"score,omitempty"`
	Card     *SolutionCardResponse   `json:"solution_card,omitempty"`
	Stats    *DebateStatsResponse    `json:"stats,omitempty"`
}

type AgentResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}
