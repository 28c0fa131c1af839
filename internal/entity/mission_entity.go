package entity

import (
	"time"

	"github.com/google/uuid"
)

type MissionStatus string

const (
	MissionStatusDraft     MissionStatus = "draft"
	MissionStatusLive      MissionStatus = "live"
	MissionStatusPaused    MissionStatus = "paused"
	MissionStatusCompleted MissionStatus = "completed"
)

type BucketSlug string

const (
	BucketEducation BucketSlug = "education"
	BucketJobs      BucketSlug = "jobs"
	BucketHousing   BucketSlug = "housing"
	BucketHealth    BucketSlug = "health"
)

// AllBuckets is the fixed topical domain list, in display order.
var AllBuckets = []BucketSlug{BucketEducation, BucketJobs, BucketHousing, BucketHealth}

type Bucket struct {
	Id        uuid.UUID
	Slug      BucketSlug
	Name      string
	CreatedAt time.Time
}

type Mission struct {
	Id            uuid.UUID
	BucketId      uuid.UUID
	Title         string
	CoreQuestion  string
	DebateHook    string
	SuccessMetric string
	Status        MissionStatus
	// IsLive is true only while Status == MissionStatusLive.
	IsLive      bool
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
