package entity

import (
	"time"

	"github.com/google/uuid"
)

type TradingAccountStatus string

const (
	TradingAccountActive    TradingAccountStatus = "ACTIVE"
	TradingAccountSuspended TradingAccountStatus = "SUSPENDED"
)

// User is an end customer. AssignedAdmin nil means the user belongs to the
// Super Admin tenant directly.
type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         string
	AssignedAdmin *uuid.UUID
	AdminUrlSlug  string
	IsBlocked     bool
	BlockReason   string
	IsBanned      bool
	BanReason     string
	KycApproved   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserWallet struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Balance   float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TradingAccount mirrors one platform account. Credit is the bonus counter,
// adjustable in both directions without balance constraints.
type TradingAccount struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	AccountNumber string
	Balance       float64
	Credit        float64
	Leverage      int
	Status        TradingAccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountSummary is derived per request from externally supplied position
// aggregates, never stored.
type AccountSummary struct {
	Balance     float64
	Credit      float64
	Equity      float64
	UsedMargin  float64
	FreeMargin  float64
	MarginLevel float64
	FloatingPnL float64
}

// Summarize computes equity, free margin and margin level from the account
// state and the caller's margin/PnL aggregates.
func (a *TradingAccount) Summarize(usedMargin, floatingPnL float64) AccountSummary {
	equity := a.Balance + a.Credit + floatingPnL
	marginLevel := 0.0
	if usedMargin > 0 {
		marginLevel = equity / usedMargin * 100
	}
	return AccountSummary{
		Balance:     a.Balance,
		Credit:      a.Credit,
		Equity:      equity,
		UsedMargin:  usedMargin,
		FreeMargin:  equity - usedMargin,
		MarginLevel: marginLevel,
		FloatingPnL: floatingPnL,
	}
}
