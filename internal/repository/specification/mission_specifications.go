package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LiveMissions selects missions the generator advances: status=live AND is_live.
type LiveMissions struct{}

func (s LiveMissions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND is_live = ?", "live", true)
}

// PublicMissions selects missions the presentation layer (and sitemap) exposes.
type PublicMissions struct{}

func (s PublicMissions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", []string{"live", "completed"})
}

// ByMission scopes debate rows to one mission.
type ByMission struct {
	MissionID uuid.UUID
}

func (s ByMission) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("mission_id = ?", s.MissionID)
}

// ByRound scopes debate messages to one round.
type ByRound struct {
	Round int
}

func (s ByRound) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("round_number = ?", s.Round)
}

// ByClaims scopes citations to a set of claims.
type ByClaims struct {
	ClaimIDs []uuid.UUID
}

func (s ByClaims) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("claim_id IN ?", s.ClaimIDs)
}

// ActiveAgents selects the agent pool the generator draws from.
type ActiveAgents struct{}

func (s ActiveAgents) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
