package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFundRequestRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type ProcessFundRequestRequest struct {
	Id      uuid.UUID
	Approve bool   `json:"approve"`
	Remarks string `json:"remarks"`
}

type FundWalletRequest struct {
	AdminId     uuid.UUID `json:"adminId" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
}

type DeductWalletRequest struct {
	AdminId     uuid.UUID `json:"adminId" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
}

type UserFundsRequest struct {
	UserId      uuid.UUID
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type TradingAccountFundsRequest struct {
	AccountId uuid.UUID
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Reason    string  `json:"reason"`
}

type WalletResponse struct {
	AdminId           uuid.UUID `json:"adminId"`
	Balance           float64   `json:"balance"`
	TotalReceived     float64   `json:"totalReceived"`
	TotalGivenToUsers float64   `json:"totalGivenToUsers"`
	Status            string    `json:"status"`
	Unlimited         bool      `json:"unlimited"`
}

type FundRequestResponse struct {
	Id          uuid.UUID  `json:"id"`
	AdminId     uuid.UUID  `json:"adminId"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ProcessedBy *uuid.UUID `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	Remarks     string     `json:"remarks,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type TransactionResponse struct {
	Id           uuid.UUID  `json:"id"`
	FromAdminId  *uuid.UUID `json:"fromAdminId,omitempty"`
	ToAdminId    *uuid.UUID `json:"toAdminId,omitempty"`
	ToUserId     *uuid.UUID `json:"toUserId,omitempty"`
	Type         string     `json:"type"`
	Amount       float64    `json:"amount"`
	BalanceAfter float64    `json:"balanceAfter"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type AccountSummaryRequest struct {
	AccountId   uuid.UUID
	UsedMargin  float64 `json:"usedMargin" validate:"gte=0"`
	FloatingPnL float64 `json:"floatingPnl"`
}

type AccountSummaryResponse struct {
	AccountId   uuid.UUID `json:"accountId"`
	Balance     float64   `json:"balance"`
	Credit      float64   `json:"credit"`
	Equity      float64   `json:"equity"`
	UsedMargin  float64   `json:"usedMargin"`
	FreeMargin  float64   `json:"freeMargin"`
	MarginLevel float64   `json:"marginLevel"`
	FloatingPnL float64   `json:"floatingPnl"`
}
