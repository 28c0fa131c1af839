package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
)

type SystemStatusRepository interface {
	// Get returns the singleton row, or nil when the table is empty.
	Get(ctx context.Context) (*entity.SystemStatus, error)
	Create(ctx context.Context, status *entity.SystemStatus) error
	Update(ctx context.Context, status *entity.SystemStatus) error
}
