package contract

import (
	"context"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
)

// WalletRepository covers admin wallets, fund requests and the append-only
// transaction ledger. Ledger entries are never updated or deleted.
type WalletRepository interface {
	CreateWallet(ctx context.Context, wallet *entity.AdminWallet) error
	UpdateWallet(ctx context.Context, wallet *entity.AdminWallet) error
	DeleteWalletByAdmin(ctx context.Context, adminId uuid.UUID) error
	FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.AdminWallet, error)
	FindWallets(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWallet, error)
	UpdateWalletStatus(ctx context.Context, adminId uuid.UUID, status string) error

	CreateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error
	UpdateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error
	FindFundRequest(ctx context.Context, specs ...specification.Specification) (*entity.AdminFundRequest, error)
	FindFundRequests(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminFundRequest, error)
	CountFundRequests(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateTransaction(ctx context.Context, tx *entity.AdminWalletTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWalletTransaction, error)
	CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteTransactionsByAdmin(ctx context.Context, adminId uuid.UUID) error
	SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error)
}
