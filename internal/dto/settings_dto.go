package dto

import (
	"fx-backoffice-be/internal/entity"

	"github.com/google/uuid"
)

type UpdateBankSettingsRequest struct {
	entity.BankSettings
}

type UpdateForexChargesRequest struct {
	Charges []entity.ForexCharge `json:"charges" validate:"required,dive"`
}

type UpdateThemeSettingsRequest struct {
	entity.ThemeSettings
}

type UpdateEmailTemplatesRequest struct {
	entity.EmailTemplates
}

type UpdateBonusSettingsRequest struct {
	Bonuses []entity.BonusSetting `json:"bonuses" validate:"required,dive"`
}

type UpdateAccountTypesRequest struct {
	AccountTypes []entity.AccountType `json:"accountTypes" validate:"required,dive"`
}

type UpdateIBSettingsRequest struct {
	entity.IBSettings
}

type UpdateCopyTradeSettingsRequest struct {
	entity.CopyTradeSettings
}

type UpdatePropFirmSettingsRequest struct {
	entity.PropFirmSettings
}

// EffectiveSettingsResponse carries resolved sections. SectionSources maps
// each section key to "tenant" or "default" so clients can tell which
// values were inherited.
type EffectiveSettingsResponse struct {
	AdminId           uuid.UUID                `json:"adminId"`
	BankSettings      entity.BankSettings      `json:"bankSettings"`
	ForexCharges      []entity.ForexCharge     `json:"forexCharges"`
	ThemeSettings     entity.ThemeSettings     `json:"themeSettings"`
	EmailTemplates    entity.EmailTemplates    `json:"emailTemplates"`
	BonusSettings     []entity.BonusSetting    `json:"bonusSettings"`
	AccountTypes      []entity.AccountType     `json:"accountTypes"`
	IBSettings        entity.IBSettings        `json:"ibSettings"`
	CopyTradeSettings entity.CopyTradeSettings `json:"copyTradeSettings"`
	PropFirmSettings  entity.PropFirmSettings  `json:"propFirmSettings"`
	IsConfigured      entity.ConfiguredFlags   `json:"isConfigured"`
	SectionSources    map[string]string        `json:"sectionSources"`
}

// BrandedSettingsResponse is the public by-slug payload with tenant
// metadata attached.
type BrandedSettingsResponse struct {
	Brand    BrandResponse             `json:"brand"`
	Settings EffectiveSettingsResponse `json:"settings"`
}

// UserSettingsResponse is the per-user resolution entry point.
type UserSettingsResponse struct {
	Settings                EffectiveSettingsResponse `json:"settings"`
	UsingSuperAdminSettings bool                      `json:"usingSuperAdminSettings"`
}
