package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	AccessToken string   `json:"access_token"`
	Admin       AdminDTO `json:"admin"`
}

type AdminDTO struct {
	Id       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" validate:"required,min=8"`
}

type GenerationLogResponse struct {
	Id               uuid.UUID  `json:"id"`
	CycleType        string     `json:"cycle_type"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at"`
	DurationMs       int64      `json:"duration_ms"`
	MissionsTouched  int        `json:"missions_touched"`
	MessagesCreated  int        `json:"messages_created"`
	ClaimsCreated    int        `json:"claims_created"`
	CitationsCreated int        `json:"citations_created"`
	Errors           []string   `json:"errors,omitempty"`
	Status           string     `json:"status"`
}

type AdminMetricsResponse struct {
	MissionsTotal  int64 `json:"missions_total"`
	MissionsLive   int64 `json:"missions_live"`
	MessagesTotal  int64 `json:"messages_total"`
	ClaimsTotal    int64 `json:"claims_total"`
	CitationsTotal int64 `json:"citations_total"`
	DonationsTotal int64 `json:"donations_total"`
	DonationEvents int64 `json:"donation_events"`
	// Since-startup counters fed by the analytics pipeline.
	DonationsSinceStart     int64                   `json:"donations_since_start"`
	DonationCentsSinceStart int64                   `json:"donation_cents_since_start"`
	RecentCycles            []GenerationLogResponse `json:"recent_cycles"`
}
