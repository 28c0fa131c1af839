package contract

import (
	"context"

	"signal-for-good-be/internal/entity"
	"signal-for-good-be/internal/repository/specification"
)

type AdminUserRepository interface {
	Create(ctx context.Context, admin *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
