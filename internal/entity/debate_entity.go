package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lane string

const (
	LaneProposal Lane = "proposal"
	LaneSupport  Lane = "support"
	LaneCounter  Lane = "counter"
)

// Lanes in fixed assignment order: message index mod 3 picks from here.
var Lanes = []Lane{LaneProposal, LaneSupport, LaneCounter}

type ClaimType string

const (
	ClaimTypeEvidence    ClaimType = "evidence"
	ClaimTypePrecedent   ClaimType = "precedent"
	ClaimTypeAssumption  ClaimType = "assumption"
	ClaimTypeSpeculation ClaimType = "speculation"
)

var ClaimTypes = []ClaimType{ClaimTypeEvidence, ClaimTypePrecedent, ClaimTypeAssumption, ClaimTypeSpeculation}

type DebateMessage struct {
	Id          uuid.UUID
	MissionId   uuid.UUID
	AgentId     uuid.UUID
	RoundNumber int
	Lane        Lane
	Content     string
	CreatedAt   time.Time
}

type Claim struct {
	Id          uuid.UUID
	MissionId   uuid.UUID
	MessageId   uuid.UUID
	ClaimText   string
	ClaimType   ClaimType
	Confidence  int // 0-100
	IsFlagged   bool
	IsRetracted bool
	CreatedAt   time.Time
}

type Citation struct {
	Id           uuid.UUID
	ClaimId      uuid.UUID
	SourceId     uuid.UUID
	Snippet      string
	WhyItMatters string
	CreatedAt    time.Time
}

type SourcePack struct {
	Id          uuid.UUID
	BucketId    uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

type Source struct {
	Id           uuid.UUID
	SourcePackId uuid.UUID
	Title        string
	URL          string
	SourceType   string // government, university, nonprofit, research, journal
	Publisher    string
	CreatedAt    time.Time
}
