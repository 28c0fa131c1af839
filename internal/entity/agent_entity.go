package entity

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	Id        uuid.UUID
	Name      string
	Role      string
	IsActive  bool
	CreatedAt time.Time
}
