package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Score struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MissionId          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	EvidenceScore      int       `gorm:"not null;default:0"`
	ActionabilityScore int       `gorm:"not null;default:0"`
	RiskScore          int       `gorm:"not null;default:0"`
	ClarityScore       int       `gorm:"not null;default:0"`
	OverallScore       int       `gorm:"not null;default:0"`
	CitationCoverage   int       `gorm:"not null;default:0"`
	FlaggedClaimRate   int       `gorm:"not null;default:0"`
	RevisionCount      int       `gorm:"not null;default:0"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Score) TableName() string {
	return "scores"
}

type SolutionCard struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MissionId              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Title                  string         `gorm:"type:varchar(255);not null"`
	Summary                string         `gorm:"type:text"`
	Content                string         `gorm:"type:text"`
	IntendedOwner          string         `gorm:"type:varchar(255)"`
	Timeline               string         `gorm:"type:varchar(255)"`
	CostBand               string         `gorm:"type:varchar(50)"`
	StaffingAssumptions    string         `gorm:"type:varchar(255)"`
	RisksMitigations       string         `gorm:"type:text"`
	SuccessMetrics         datatypes.JSON `gorm:"type:jsonb"`
	DecisionSummary        string         `gorm:"type:text"`
	WhyThisOverAlternative string         `gorm:"type:text;column:why_this_over_alternatives"`
	ImplementationSteps    datatypes.JSON `gorm:"type:jsonb"`
	First30DaysPlan        string         `gorm:"type:text"`
	IsPublished            bool           `gorm:"default:false"`
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
}

func (SolutionCard) TableName() string {
	return "solution_cards"
}

type DebateStats struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MissionId        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	LastMessageAt    *time.Time `gorm:""`
	MessagesLastHour int        `gorm:"not null;default:0"`
	ClaimsCount      int        `gorm:"not null;default:0"`
	CitationCoverage int        `gorm:"not null;default:0"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (DebateStats) TableName() string {
	return "debate_stats"
}
