package mapper

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		AssignedAdmin: u.AssignedAdmin,
		AdminUrlSlug:  u.AdminUrlSlug,
		IsBlocked:     u.IsBlocked,
		BlockReason:   u.BlockReason,
		IsBanned:      u.IsBanned,
		BanReason:     u.BanReason,
		KycApproved:   u.KycApproved,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		AssignedAdmin: u.AssignedAdmin,
		AdminUrlSlug:  u.AdminUrlSlug,
		IsBlocked:     u.IsBlocked,
		BlockReason:   u.BlockReason,
		IsBanned:      u.IsBanned,
		BanReason:     u.BanReason,
		KycApproved:   u.KycApproved,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) WalletToEntity(w *model.UserWallet) *entity.UserWallet {
	if w == nil {
		return nil
	}
	return &entity.UserWallet{
		Id:        w.Id,
		UserId:    w.UserId,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (m *UserMapper) WalletToModel(w *entity.UserWallet) *model.UserWallet {
	if w == nil {
		return nil
	}
	return &model.UserWallet{
		Id:        w.Id,
		UserId:    w.UserId,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (m *UserMapper) TradingAccountToEntity(a *model.TradingAccount) *entity.TradingAccount {
	if a == nil {
		return nil
	}
	return &entity.TradingAccount{
		Id:            a.Id,
		UserId:        a.UserId,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		Credit:        a.Credit,
		Leverage:      a.Leverage,
		Status:        entity.TradingAccountStatus(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *UserMapper) TradingAccountToModel(a *entity.TradingAccount) *model.TradingAccount {
	if a == nil {
		return nil
	}
	return &model.TradingAccount{
		Id:            a.Id,
		UserId:        a.UserId,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
		Credit:        a.Credit,
		Leverage:      a.Leverage,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *UserMapper) TradingAccountsToEntities(accounts []*model.TradingAccount) []*entity.TradingAccount {
	entities := make([]*entity.TradingAccount, len(accounts))
	for i, a := range accounts {
		entities[i] = m.TradingAccountToEntity(a)
	}
	return entities
}
