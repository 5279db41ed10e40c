package contract

import (
	"context"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error

	CreateWallet(ctx context.Context, wallet *entity.UserWallet) error
	UpdateWallet(ctx context.Context, wallet *entity.UserWallet) error
	FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.UserWallet, error)

	CreateTradingAccount(ctx context.Context, account *entity.TradingAccount) error
	UpdateTradingAccount(ctx context.Context, account *entity.TradingAccount) error
	FindTradingAccount(ctx context.Context, specs ...specification.Specification) (*entity.TradingAccount, error)
	FindTradingAccounts(ctx context.Context, specs ...specification.Specification) ([]*entity.TradingAccount, error)
}
