package entity

import (
	"time"

	"github.com/google/uuid"
)

type DonationIntentStatus string

const (
	DonationIntentPending   DonationIntentStatus = "intent"
	DonationIntentCompleted DonationIntentStatus = "completed"
	DonationIntentFailed    DonationIntentStatus = "failed"
)

// DonationIntent is the pre-flight record written before a checkout session is
// requested. IP and user agent are stored hashed, never raw.
type DonationIntent struct {
	Id            uuid.UUID
	Method        string
	AmountCents   int64
	PagePath      string
	DonorEmail    *string
	UserAgentHash *string
	IpHash        *string
	Status        DonationIntentStatus
	OrderId       *string // provider order id, set once the session is created
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DonationEvent is an immutable audit row per verified provider event.
// ProviderEventId carries the processor's own idempotency id; a uniqueness
// constraint on it makes duplicate deliveries no-ops.
type DonationEvent struct {
	Id              uuid.UUID
	Provider        string
	ProviderEventId string
	OrderId         string
	AmountCents     int64
	Currency        string
	PaymentStatus   string
	CreatedAt       time.Time
}
