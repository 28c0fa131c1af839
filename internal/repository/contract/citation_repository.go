package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CitationRepository interface {
	Create(ctx context.Context, citation *entity.Citation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Citation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// CountForMission counts citations over the mission's claims.
	CountForMission(ctx context.Context, missionId uuid.UUID) (int64, error)
}
