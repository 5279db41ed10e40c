package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section keys for AdminSettings. Every update endpoint targets exactly one
// of these and flips its configured flag.
const (
	SectionBank           = "bankSettings"
	SectionForexCharges   = "forexCharges"
	SectionTheme          = "themeSettings"
	SectionEmailTemplates = "emailTemplates"
	SectionBonus          = "bonusSettings"
	SectionAccountTypes   = "accountTypes"
	SectionIB             = "ibSettings"
	SectionCopyTrade      = "copyTradeSettings"
	SectionPropFirm       = "propFirmSettings"
)

func SectionKeys() []string {
	return []string{
		SectionBank, SectionForexCharges, SectionTheme, SectionEmailTemplates,
		SectionBonus, SectionAccountTypes, SectionIB, SectionCopyTrade,
		SectionPropFirm,
	}
}

type CryptoAddress struct {
	Currency string `json:"currency"`
	Network  string `json:"network"`
	Address  string `json:"address"`
	QrCode   string `json:"qrCode"`
}

type BankSettings struct {
	BankName            string          `json:"bankName"`
	AccountName         string          `json:"accountName"`
	AccountNumber       string          `json:"accountNumber"`
	IfscCode            string          `json:"ifscCode"`
	UpiId               string          `json:"upiId"`
	UpiQrCode           string          `json:"upiQrCode"`
	CryptoAddresses     []CryptoAddress `json:"cryptoAddresses"`
	PaymentInstructions string          `json:"paymentInstructions"`
	MinDeposit          float64         `json:"minDeposit"`
	MaxDeposit          float64         `json:"maxDeposit"`
	MinWithdrawal       float64         `json:"minWithdrawal"`
	MaxWithdrawal       float64         `json:"maxWithdrawal"`
}

type ForexCharge struct {
	Symbol     string  `json:"symbol"`
	Spread     float64 `json:"spread"`
	Commission float64 `json:"commission"`
	SwapLong   float64 `json:"swapLong"`
	SwapShort  float64 `json:"swapShort"`
	Leverage   int     `json:"leverage"`
}

type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	Logo            string `json:"logo"`
	Favicon         string `json:"favicon"`
	LoginBackground string `json:"loginBackground"`
	CustomCss       string `json:"customCss"`
}

type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Enabled bool   `json:"enabled"`
}

type EmailTemplates struct {
	WelcomeEmail           EmailTemplate `json:"welcomeEmail"`
	DepositConfirmation    EmailTemplate `json:"depositConfirmation"`
	WithdrawalConfirmation EmailTemplate `json:"withdrawalConfirmation"`
	PasswordReset          EmailTemplate `json:"passwordReset"`
	KycApproved            EmailTemplate `json:"kycApproved"`
	KycRejected            EmailTemplate `json:"kycRejected"`
}

type BonusSetting struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	BonusType  string  `json:"bonusType"`
	BonusValue float64 `json:"bonusValue"`
	MinDeposit float64 `json:"minDeposit"`
	MaxBonus   float64 `json:"maxBonus"`
	Status     string  `json:"status"`
}

type AccountType struct {
	Name        string   `json:"name"`
	MinDeposit  float64  `json:"minDeposit"`
	MaxLeverage int      `json:"maxLeverage"`
	Spread      string   `json:"spread"`
	Commission  float64  `json:"commission"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Status      string   `json:"status"`
}

type IBLevel struct {
	Level             int     `json:"level"`
	CommissionPercent float64 `json:"commissionPercent"`
}

type IBSettings struct {
	Enabled        bool      `json:"enabled"`
	CommissionRate float64   `json:"commissionRate"`
	MinWithdrawal  float64   `json:"minWithdrawal"`
	Levels         []IBLevel `json:"levels"`
}

type CopyTradeSettings struct {
	Enabled       bool    `json:"enabled"`
	MinCopyAmount float64 `json:"minCopyAmount"`
	MaxCopyAmount float64 `json:"maxCopyAmount"`
	ProfitShare   float64 `json:"profitShare"`
}

type PropFirmChallenge struct {
	Name           string  `json:"name"`
	AccountSize    float64 `json:"accountSize"`
	Price          float64 `json:"price"`
	ProfitTarget   float64 `json:"profitTarget"`
	MaxDrawdown    float64 `json:"maxDrawdown"`
	DailyDrawdown  float64 `json:"dailyDrawdown"`
	MinTradingDays int     `json:"minTradingDays"`
	ProfitSplit    float64 `json:"profitSplit"`
	Status         string  `json:"status"`
}

type PropFirmSettings struct {
	Enabled    bool                `json:"enabled"`
	Challenges []PropFirmChallenge `json:"challenges"`
}

// ConfiguredFlags marks which sections the tenant has explicitly saved.
// Unconfigured sections resolve to the Super Admin defaults.
type ConfiguredFlags struct {
	BankSettings      bool `json:"bankSettings"`
	ForexCharges      bool `json:"forexCharges"`
	ThemeSettings     bool `json:"themeSettings"`
	EmailTemplates    bool `json:"emailTemplates"`
	BonusSettings     bool `json:"bonusSettings"`
	AccountTypes      bool `json:"accountTypes"`
	IBSettings        bool `json:"ibSettings"`
	CopyTradeSettings bool `json:"copyTradeSettings"`
	PropFirmSettings  bool `json:"propFirmSettings"`
}

type AdminSettings struct {
	Id                uuid.UUID
	AdminId           uuid.UUID
	BankSettings      BankSettings
	ForexCharges      []ForexCharge
	ThemeSettings     ThemeSettings
	EmailTemplates    EmailTemplates
	BonusSettings     []BonusSetting
	AccountTypes      []AccountType
	IBSettings        IBSettings
	CopyTradeSettings CopyTradeSettings
	PropFirmSettings  PropFirmSettings
	IsConfigured      ConfiguredFlags
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAdminSettings returns the blank settings row created lazily on first
// read or write for a tenant.
func NewAdminSettings(adminId uuid.UUID) *AdminSettings {
	return &AdminSettings{
		AdminId: adminId,
		ThemeSettings: ThemeSettings{
			PrimaryColor:   "#3B82F6",
			SecondaryColor: "#10B981",
		},
		IBSettings:        IBSettings{Enabled: true},
		CopyTradeSettings: CopyTradeSettings{Enabled: true},
	}
}
