package unitofwork

import (
	"context"

	"fx-backoffice-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AdminRepository() contract.AdminRepository
	WalletRepository() contract.WalletRepository
	UserRepository() contract.UserRepository
	SettingsRepository() contract.SettingsRepository
	KYCRepository() contract.KYCRepository
	BannerRepository() contract.BannerRepository
	NotificationRepository() contract.NotificationRepository
}
