package implementation

import (
	"context"
	"errors"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/mapper"
	"fx-backoffice-be/internal/model"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WalletMapper
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mapper.NewWalletMapper(),
	}
}

func (r *WalletRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WalletRepositoryImpl) CreateWallet(ctx context.Context, wallet *entity.AdminWallet) error {
	m := r.mapper.ToModel(wallet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateWallet(ctx context.Context, wallet *entity.AdminWallet) error {
	m := r.mapper.ToModel(wallet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.ToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) DeleteWalletByAdmin(ctx context.Context, adminId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("admin_id = ?", adminId).Delete(&model.AdminWallet{}).Error
}

func (r *WalletRepositoryImpl) FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.AdminWallet, error) {
	var m model.AdminWallet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WalletRepositoryImpl) FindWallets(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWallet, error) {
	var models []*model.AdminWallet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	wallets := make([]*entity.AdminWallet, len(models))
	for i, m := range models {
		wallets[i] = r.mapper.ToEntity(m)
	}
	return wallets, nil
}

func (r *WalletRepositoryImpl) UpdateWalletStatus(ctx context.Context, adminId uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.AdminWallet{}).Where("admin_id = ?", adminId).Update("status", status).Error
}

func (r *WalletRepositoryImpl) CreateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error {
	m := r.mapper.FundRequestToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.FundRequestToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) UpdateFundRequest(ctx context.Context, request *entity.AdminFundRequest) error {
	m := r.mapper.FundRequestToModel(request)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.FundRequestToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindFundRequest(ctx context.Context, specs ...specification.Specification) (*entity.AdminFundRequest, error) {
	var m model.AdminFundRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FundRequestToEntity(&m), nil
}

func (r *WalletRepositoryImpl) FindFundRequests(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminFundRequest, error) {
	var models []*model.AdminFundRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FundRequestsToEntities(models), nil
}

func (r *WalletRepositoryImpl) CountFundRequests(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdminFundRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WalletRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.AdminWalletTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *WalletRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminWalletTransaction, error) {
	var models []*model.AdminWalletTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TransactionsToEntities(models), nil
}

func (r *WalletRepositoryImpl) CountTransactions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdminWalletTransaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WalletRepositoryImpl) DeleteTransactionsByAdmin(ctx context.Context, adminId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("from_admin_id = ? OR to_admin_id = ?", adminId, adminId).
		Delete(&model.AdminWalletTransaction{}).Error
}

func (r *WalletRepositoryImpl) SumTransactionAmounts(ctx context.Context, specs ...specification.Specification) (float64, error) {
	var total *float64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdminWalletTransaction{}), specs...)
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
