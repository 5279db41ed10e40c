package contract

import (
	"context"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	Update(ctx context.Context, banner *entity.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Banner, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Banner, error)
}
