package mapper

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"
)

type WalletMapper struct{}

func NewWalletMapper() *WalletMapper {
	return &WalletMapper{}
}

func (m *WalletMapper) ToEntity(w *model.AdminWallet) *entity.AdminWallet {
	if w == nil {
		return nil
	}
	return &entity.AdminWallet{
		Id:                w.Id,
		AdminId:           w.AdminId,
		Balance:           w.Balance,
		TotalReceived:     w.TotalReceived,
		TotalGivenToUsers: w.TotalGivenToUsers,
		Status:            entity.WalletStatus(w.Status),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func (m *WalletMapper) ToModel(w *entity.AdminWallet) *model.AdminWallet {
	if w == nil {
		return nil
	}
	return &model.AdminWallet{
		Id:                w.Id,
		AdminId:           w.AdminId,
		Balance:           w.Balance,
		TotalReceived:     w.TotalReceived,
		TotalGivenToUsers: w.TotalGivenToUsers,
		Status:            string(w.Status),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func (m *WalletMapper) FundRequestToEntity(r *model.AdminFundRequest) *entity.AdminFundRequest {
	if r == nil {
		return nil
	}
	return &entity.AdminFundRequest{
		Id:          r.Id,
		AdminId:     r.AdminId,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      entity.FundRequestStatus(r.Status),
		ProcessedBy: r.ProcessedBy,
		ProcessedAt: r.ProcessedAt,
		Remarks:     r.Remarks,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *WalletMapper) FundRequestToModel(r *entity.AdminFundRequest) *model.AdminFundRequest {
	if r == nil {
		return nil
	}
	return &model.AdminFundRequest{
		Id:          r.Id,
		AdminId:     r.AdminId,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      string(r.Status),
		ProcessedBy: r.ProcessedBy,
		ProcessedAt: r.ProcessedAt,
		Remarks:     r.Remarks,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *WalletMapper) FundRequestsToEntities(requests []*model.AdminFundRequest) []*entity.AdminFundRequest {
	entities := make([]*entity.AdminFundRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.FundRequestToEntity(r)
	}
	return entities
}

func (m *WalletMapper) TransactionToEntity(t *model.AdminWalletTransaction) *entity.AdminWalletTransaction {
	if t == nil {
		return nil
	}
	return &entity.AdminWalletTransaction{
		Id:           t.Id,
		FromAdminId:  t.FromAdminId,
		ToAdminId:    t.ToAdminId,
		ToUserId:     t.ToUserId,
		Type:         entity.TransactionType(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *WalletMapper) TransactionToModel(t *entity.AdminWalletTransaction) *model.AdminWalletTransaction {
	if t == nil {
		return nil
	}
	return &model.AdminWalletTransaction{
		Id:           t.Id,
		FromAdminId:  t.FromAdminId,
		ToAdminId:    t.ToAdminId,
		ToUserId:     t.ToUserId,
		Type:         string(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

func (m *WalletMapper) TransactionsToEntities(txs []*model.AdminWalletTransaction) []*entity.AdminWalletTransaction {
	entities := make([]*entity.AdminWalletTransaction, len(txs))
	for i, t := range txs {
		entities[i] = m.TransactionToEntity(t)
	}
	return entities
}
