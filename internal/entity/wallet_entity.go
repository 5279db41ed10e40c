package entity

import (
	"time"

	"github.com/google/uuid"
)

type WalletStatus string
type FundRequestStatus string
type TransactionType string

const (
	WalletStatusActive WalletStatus = "ACTIVE"
	WalletStatusFrozen WalletStatus = "FROZEN"

	FundRequestPending  FundRequestStatus = "PENDING"
	FundRequestApproved FundRequestStatus = "APPROVED"
	FundRequestRejected FundRequestStatus = "REJECTED"

	TxSuperToAdmin TransactionType = "SUPER_TO_ADMIN"
	TxAdminToUser  TransactionType = "ADMIN_TO_USER"
	TxAdjustment   TransactionType = "ADJUSTMENT"
)

// AdminWallet holds the distributable balance of one admin tenant.
// Balance never goes negative for ADMIN role holders; the Super Admin
// wallet is exempt from balance checks at the service layer.
type AdminWallet struct {
	Id                uuid.UUID
	AdminId           uuid.UUID
	Balance           float64
	TotalReceived     float64
	TotalGivenToUsers float64
	Status            WalletStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AdminFundRequest struct {
	Id          uuid.UUID
	AdminId     uuid.UUID
	Amount      float64
	Description string
	Status      FundRequestStatus
	ProcessedBy *uuid.UUID
	ProcessedAt *time.Time
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdminWalletTransaction is one append-only ledger entry. Amount is signed:
// negative for ADJUSTMENT deductions, positive otherwise. BalanceAfter is
// the destination wallet balance after applying the entry.
type AdminWalletTransaction struct {
	Id           uuid.UUID
	FromAdminId  *uuid.UUID
	ToAdminId    *uuid.UUID
	ToUserId     *uuid.UUID
	Type         TransactionType
	Amount       float64
	BalanceAfter float64
	Description  string
	CreatedAt    time.Time
}
