package mapper

import (
	"encoding/json"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"

	"gorm.io/datatypes"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func unmarshalSection(raw datatypes.JSON, target interface{}) {
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, target)
	}
}

func marshalSection(source interface{}) datatypes.JSON {
	raw, _ := json.Marshal(source)
	return datatypes.JSON(raw)
}

func (m *SettingsMapper) ToEntity(s *model.AdminSettings) *entity.AdminSettings {
	if s == nil {
		return nil
	}
	e := &entity.AdminSettings{
		Id:        s.Id,
		AdminId:   s.AdminId,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	unmarshalSection(s.BankSettings, &e.BankSettings)
	unmarshalSection(s.ForexCharges, &e.ForexCharges)
	unmarshalSection(s.ThemeSettings, &e.ThemeSettings)
	unmarshalSection(s.EmailTemplates, &e.EmailTemplates)
	unmarshalSection(s.BonusSettings, &e.BonusSettings)
	unmarshalSection(s.AccountTypes, &e.AccountTypes)
	unmarshalSection(s.IBSettings, &e.IBSettings)
	unmarshalSection(s.CopyTradeSettings, &e.CopyTradeSettings)
	unmarshalSection(s.PropFirmSettings, &e.PropFirmSettings)
	unmarshalSection(s.IsConfigured, &e.IsConfigured)
	return e
}

func (m *SettingsMapper) ToModel(e *entity.AdminSettings) *model.AdminSettings {
	if e == nil {
		return nil
	}
	return &model.AdminSettings{
		Id:                e.Id,
		AdminId:           e.AdminId,
		BankSettings:      marshalSection(e.BankSettings),
		ForexCharges:      marshalSection(e.ForexCharges),
		ThemeSettings:     marshalSection(e.ThemeSettings),
		EmailTemplates:    marshalSection(e.EmailTemplates),
		BonusSettings:     marshalSection(e.BonusSettings),
		AccountTypes:      marshalSection(e.AccountTypes),
		IBSettings:        marshalSection(e.IBSettings),
		CopyTradeSettings: marshalSection(e.CopyTradeSettings),
		PropFirmSettings:  marshalSection(e.PropFirmSettings),
		IsConfigured:      marshalSection(e.IsConfigured),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
