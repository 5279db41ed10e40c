package service

import (
	"testing"

	"fx-backoffice-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func platformDefaults() *entity.AdminSettings {
	defaults := entity.NewAdminSettings(uuid.Nil)
	defaults.BankSettings = entity.BankSettings{BankName: "Platform Bank", MinDeposit: 100}
	defaults.ForexCharges = []entity.ForexCharge{{Symbol: "EURUSD", Spread: 1.2, Leverage: 500}}
	defaults.ThemeSettings.PrimaryColor = "#000000"
	return defaults
}

func TestResolveEffectiveNilTenantUsesDefaults(t *testing.T) {
	defaults := platformDefaults()

	effective, sources := ResolveEffective(nil, defaults)
	assert.Equal(t, "Platform Bank", effective.BankSettings.BankName)
	assert.Equal(t, "#000000", effective.ThemeSettings.PrimaryColor)

	for _, key := range entity.SectionKeys() {
		assert.Equal(t, "default", sources[key], key)
	}
}

func TestResolveEffectiveMergesPerSection(t *testing.T) {
	defaults := platformDefaults()

	tenant := entity.NewAdminSettings(uuid.New())
	tenant.ThemeSettings = entity.ThemeSettings{PrimaryColor: "#FF0000", Logo: "https://cdn.test/logo.png"}
	tenant.IsConfigured.ThemeSettings = true
	// Bank settings were edited but never saved as configured.
	tenant.BankSettings = entity.BankSettings{BankName: "Tenant Bank"}

	effective, sources := ResolveEffective(tenant, defaults)

	assert.Equal(t, "#FF0000", effective.ThemeSettings.PrimaryColor)
	assert.Equal(t, "tenant", sources[entity.SectionTheme])

	// The unconfigured section must not leak tenant edits.
	assert.Equal(t, "Platform Bank", effective.BankSettings.BankName)
	assert.Equal(t, "default", sources[entity.SectionBank])

	require.Len(t, effective.ForexCharges, 1)
	assert.Equal(t, "EURUSD", effective.ForexCharges[0].Symbol)
	assert.Equal(t, "default", sources[entity.SectionForexCharges])

	assert.Equal(t, tenant.AdminId, effective.AdminId)
}

func TestResolveEffectiveAllSectionsConfigured(t *testing.T) {
	defaults := platformDefaults()

	tenant := entity.NewAdminSettings(uuid.New())
	tenant.IsConfigured = entity.ConfiguredFlags{
		BankSettings:      true,
		ForexCharges:      true,
		ThemeSettings:     true,
		EmailTemplates:    true,
		BonusSettings:     true,
		AccountTypes:      true,
		IBSettings:        true,
		CopyTradeSettings: true,
		PropFirmSettings:  true,
	}

	_, sources := ResolveEffective(tenant, defaults)
	for _, key := range entity.SectionKeys() {
		assert.Equal(t, "tenant", sources[key], key)
	}
}

func TestResolveEffectiveNilDefaults(t *testing.T) {
	tenant := entity.NewAdminSettings(uuid.New())
	tenant.IsConfigured.ThemeSettings = true
	tenant.ThemeSettings.PrimaryColor = "#123456"

	effective, sources := ResolveEffective(tenant, nil)
	assert.Equal(t, "#123456", effective.ThemeSettings.PrimaryColor)
	assert.Equal(t, "tenant", sources[entity.SectionTheme])
	assert.Equal(t, "default", sources[entity.SectionBank])
}
