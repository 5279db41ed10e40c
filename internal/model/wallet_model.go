package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminWallet struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Balance           float64   `gorm:"type:numeric(18,2);not null;default:0"`
	TotalReceived     float64   `gorm:"type:numeric(18,2);not null;default:0"`
	TotalGivenToUsers float64   `gorm:"type:numeric(18,2);not null;default:0"`
	Status            string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (AdminWallet) TableName() string {
	return "admin_wallets"
}

type AdminFundRequest struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount      float64    `gorm:"type:numeric(18,2);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt *time.Time
	Remarks     string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (AdminFundRequest) TableName() string {
	return "admin_fund_requests"
}

type AdminWalletTransaction struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FromAdminId  *uuid.UUID `gorm:"type:uuid;index"`
	ToAdminId    *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:CASCADE"`
	ToUserId     *uuid.UUID `gorm:"type:uuid;index"`
	Type         string     `gorm:"type:varchar(20);not null;index"`
	Amount       float64    `gorm:"type:numeric(18,2);not null"`
	BalanceAfter float64    `gorm:"type:numeric(18,2);not null"`
	Description  string     `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
}

func (AdminWalletTransaction) TableName() string {
	return "admin_wallet_transactions"
}
