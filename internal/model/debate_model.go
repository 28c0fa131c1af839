package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DebateMessage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MissionId   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_mission_round,priority:1"`
	AgentId     uuid.UUID `gorm:"type:uuid;not null;index"`
	RoundNumber int       `gorm:"not null;index:idx_messages_mission_round,priority:2"`
	Lane        string    `gorm:"type:varchar(20);not null"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index"`
}

func (DebateMessage) TableName() string {
	return "debate_messages"
}

type Claim struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MissionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClaimText   string    `gorm:"type:text;not null"`
	ClaimType   string    `gorm:"type:varchar(20);not null"`
	Confidence  int       `gorm:"not null;default:0"`
	IsFlagged   bool      `gorm:"default:false"`
	IsRetracted bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Claim) TableName() string {
	return "claims"
}

type Citation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClaimId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Snippet      string    `gorm:"type:text"`
	WhyItMatters string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Citation) TableName() string {
	return "citations"
}

type SourcePack struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BucketId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (SourcePack) TableName() string {
	return "source_packs"
}

type Source struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourcePackId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	URL          string         `gorm:"type:text"`
	SourceType   string         `gorm:"type:varchar(50)"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (Source) TableName() string {
	return "sources"
}
