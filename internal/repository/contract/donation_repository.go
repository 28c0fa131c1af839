package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type DonationRepository interface {
	CreateIntent(ctx context.Context, intent *entity.DonationIntent) error
	UpdateIntent(ctx context.Context, intent *entity.DonationIntent) error
	FindOneIntent(ctx context.Context, specs ...specification.Specification) (*entity.DonationIntent, error)
	CountIntents(ctx context.Context, specs ...specification.Specification) (int64, error)

	// CreateEvent appends an audit row. It reports created=false without error
	// when an event with the same provider event id already exists.
	CreateEvent(ctx context.Context, event *entity.DonationEvent) (created bool, err error)
	CountEvents(ctx context.Context, specs ...specification.Specification) (int64, error)
}
