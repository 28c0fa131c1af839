package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
