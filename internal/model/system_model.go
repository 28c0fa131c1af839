package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SystemStatus struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DebatesLive         int        `gorm:"not null;default:0"`
	MessagesLast10Min   int        `gorm:"not null;default:0"`
	CitationCoverage24h int        `gorm:"not null;default:0"`
	GenerationEnabled   bool       `gorm:"default:false"`
	BudgetState         string     `gorm:"type:varchar(50);default:'ok'"`
	SeedVersion         string     `gorm:"type:varchar(100)"`
	SeededAt            *time.Time `gorm:""`
	LastUpdated         time.Time  `gorm:"autoUpdateTime"`
}

func (SystemStatus) TableName() string {
	return "system_status"
}

type GenerationLog struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CycleType        string         `gorm:"type:varchar(50);default:'full'"`
	StartedAt        time.Time      `gorm:"not null"`
	FinishedAt       *time.Time     `gorm:""`
	DurationMs       int64          `gorm:"not null;default:0"`
	MissionsTouched  int            `gorm:"not null;default:0"`
	MessagesCreated  int            `gorm:"not null;default:0"`
	ClaimsCreated    int            `gorm:"not null;default:0"`
	CitationsCreated int            `gorm:"not null;default:0"`
	Errors           datatypes.JSON `gorm:"type:jsonb"`
	Status           string         `gorm:"type:varchar(50);not null"`
}

func (GenerationLog) TableName() string {
	return "generation_logs"
}

type MissionLease struct {
	MissionId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AcquiredAt time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

func (MissionLease) TableName() string {
	return "mission_leases"
}
