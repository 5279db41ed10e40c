package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	FirstName     string     `gorm:"type:varchar(100);not null"`
	LastName      string     `gorm:"type:varchar(100)"`
	Phone         string     `gorm:"type:varchar(32)"`
	AssignedAdmin *uuid.UUID `gorm:"type:uuid;index"`
	AdminUrlSlug  string     `gorm:"type:varchar(100);index"`
	IsBlocked     bool       `gorm:"not null;default:false"`
	BlockReason   string     `gorm:"type:text"`
	IsBanned      bool       `gorm:"not null;default:false"`
	BanReason     string     `gorm:"type:text"`
	KycApproved   bool       `gorm:"not null;default:false"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserWallet struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Balance   float64   `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserWallet) TableName() string {
	return "user_wallets"
}

type TradingAccount struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountNumber string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Balance       float64   `gorm:"type:numeric(18,2);not null;default:0"`
	Credit        float64   `gorm:"type:numeric(18,2);not null;default:0"`
	Leverage      int       `gorm:"not null;default:100"`
	Status        string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (TradingAccount) TableName() string {
	return "trading_accounts"
}
