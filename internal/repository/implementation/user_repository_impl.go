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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *UserRepositoryImpl) CreateWallet(ctx context.Context, wallet *entity.UserWallet) error {
	m := r.mapper.WalletToModel(wallet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.WalletToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateWallet(ctx context.Context, wallet *entity.UserWallet) error {
	m := r.mapper.WalletToModel(wallet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*wallet = *r.mapper.WalletToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindWallet(ctx context.Context, specs ...specification.Specification) (*entity.UserWallet, error) {
	var m model.UserWallet
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WalletToEntity(&m), nil
}

func (r *UserRepositoryImpl) CreateTradingAccount(ctx context.Context, account *entity.TradingAccount) error {
	m := r.mapper.TradingAccountToModel(account)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.TradingAccountToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) UpdateTradingAccount(ctx context.Context, account *entity.TradingAccount) error {
	m := r.mapper.TradingAccountToModel(account)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*account = *r.mapper.TradingAccountToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindTradingAccount(ctx context.Context, specs ...specification.Specification) (*entity.TradingAccount, error) {
	var m model.TradingAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TradingAccountToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindTradingAccounts(ctx context.Context, specs ...specification.Specification) ([]*entity.TradingAccount, error) {
	var models []*model.TradingAccount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TradingAccountsToEntities(models), nil
}
