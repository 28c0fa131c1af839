package model

import (
	"time"

	"github.com/google/uuid"
)

type Bucket struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Bucket) TableName() string {
	return "buckets"
}

type Mission struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BucketId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title         string     `gorm:"type:varchar(255);not null"`
	CoreQuestion  string     `gorm:"type:text"`
	DebateHook    string     `gorm:"type:text"`
	SuccessMetric string     `gorm:"type:text"`
	Status        string     `gorm:"type:varchar(50);not null;index"`
	IsLive        bool       `gorm:"default:false;index"`
	StartedAt     *time.Time `gorm:""`
	CompletedAt   *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Mission) TableName() string {
	return "missions"
}

type Agent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(255)"`
	IsActive  bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
