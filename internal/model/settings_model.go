package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminSettings keeps each section as a JSONB document so tenants can evolve
// payloads without migrations. IsConfigured is a flat JSONB flag map keyed by
// section name.
type AdminSettings struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BankSettings      datatypes.JSON
	ForexCharges      datatypes.JSON
	ThemeSettings     datatypes.JSON
	EmailTemplates    datatypes.JSON
	BonusSettings     datatypes.JSON
	AccountTypes      datatypes.JSON
	IBSettings        datatypes.JSON
	CopyTradeSettings datatypes.JSON
	PropFirmSettings  datatypes.JSON
	IsConfigured      datatypes.JSON
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (AdminSettings) TableName() string {
	return "admin_settings"
}
