package contract

import (
	"context"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SettingsRepository interface {
	Create(ctx context.Context, settings *entity.AdminSettings) error
	Update(ctx context.Context, settings *entity.AdminSettings) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminSettings, error)
	DeleteByAdmin(ctx context.Context, adminId uuid.UUID) error
}
