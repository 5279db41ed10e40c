package contract

import (
	"context"
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error
	FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error)
}
