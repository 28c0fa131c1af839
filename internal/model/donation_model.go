package model

import (
	"time"

	"github.com/google/uuid"
)

type DonationIntent struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Method        string    `gorm:"type:varchar(50);not null"`
	AmountCents   int64     `gorm:"not null"`
	PagePath      string    `gorm:"type:varchar(255)"`
	DonorEmail    *string   `gorm:"type:varchar(255)"`
	UserAgentHash *string   `gorm:"type:varchar(64)"`
	IpHash        *string   `gorm:"type:varchar(64)"`
	Status        string    `gorm:"type:varchar(50);not null;index"`
	OrderId       *string   `gorm:"type:varchar(255);index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (DonationIntent) TableName() string {
	return "donation_intents"
}

type DonationEvent struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Provider        string    `gorm:"type:varchar(50);not null"`
	ProviderEventId string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	OrderId         string    `gorm:"type:varchar(255);index"`
	AmountCents     int64     `gorm:"not null;default:0"`
	Currency        string    `gorm:"type:varchar(10);default:'usd'"`
	PaymentStatus   string    `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (DonationEvent) TableName() string {
	return "donation_events"
}

type AdminUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);default:'admin'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
