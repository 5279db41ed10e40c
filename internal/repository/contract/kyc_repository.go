package contract

import (
	"context"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"
)

type KYCRepository interface {
	Create(ctx context.Context, doc *entity.KYCDocument) error
	Update(ctx context.Context, doc *entity.KYCDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KYCDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KYCDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
