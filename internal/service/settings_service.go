package service

import (
	"context"
	"time"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	sectionSourceTenant  = "tenant"
	sectionSourceDefault = "default"
)

type ISettingsService interface {
	GetEffectiveSettings(ctx context.Context, adminId uuid.UUID) (*dto.EffectiveSettingsResponse, error)
	GetSettingsBySlug(ctx context.Context, slug string) (*dto.BrandedSettingsResponse, error)
	GetSettingsForUser(ctx context.Context, userId uuid.UUID) (*dto.UserSettingsResponse, error)

	UpdateBankSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateBankSettingsRequest) error
	UpdateForexCharges(ctx context.Context, adminId uuid.UUID, req *dto.UpdateForexChargesRequest) error
	UpdateThemeSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateThemeSettingsRequest) error
	UpdateEmailTemplates(ctx context.Context, adminId uuid.UUID, req *dto.UpdateEmailTemplatesRequest) error
	UpdateBonusSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateBonusSettingsRequest) error
	UpdateAccountTypes(ctx context.Context, adminId uuid.UUID, req *dto.UpdateAccountTypesRequest) error
	UpdateIBSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateIBSettingsRequest) error
	UpdateCopyTradeSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateCopyTradeSettingsRequest) error
	UpdatePropFirmSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdatePropFirmSettingsRequest) error
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory) ISettingsService {
	return &settingsService{uowFactory: uowFactory}
}

// ResolveEffective merges tenant settings over the super admin defaults
// section by section. A section only comes from the tenant when its
// configured flag is set; partially filled but unsaved sections never leak.
func ResolveEffective(tenant, defaults *entity.AdminSettings) (*entity.AdminSettings, map[string]string) {
	sources := make(map[string]string, len(entity.SectionKeys()))
	for _, key := range entity.SectionKeys() {
		sources[key] = sectionSourceDefault
	}

	effective := &entity.AdminSettings{}
	if defaults != nil {
		*effective = *defaults
	}
	if tenant == nil {
		return effective, sources
	}

	effective.AdminId = tenant.AdminId
	effective.IsConfigured = tenant.IsConfigured

	if tenant.IsConfigured.BankSettings {
		effective.BankSettings = tenant.BankSettings
		sources[entity.SectionBank] = sectionSourceTenant
	}
	if tenant.IsConfigured.ForexCharges {
		effective.ForexCharges = tenant.ForexCharges
		sources[entity.SectionForexCharges] = sectionSourceTenant
	}
	if tenant.IsConfigured.ThemeSettings {
		effective.ThemeSettings = tenant.ThemeSettings
		sources[entity.SectionTheme] = sectionSourceTenant
	}
	if tenant.IsConfigured.EmailTemplates {
		effective.EmailTemplates = tenant.EmailTemplates
		sources[entity.SectionEmailTemplates] = sectionSourceTenant
	}
	if tenant.IsConfigured.BonusSettings {
		effective.BonusSettings = tenant.BonusSettings
		sources[entity.SectionBonus] = sectionSourceTenant
	}
	if tenant.IsConfigured.AccountTypes {
		effective.AccountTypes = tenant.AccountTypes
		sources[entity.SectionAccountTypes] = sectionSourceTenant
	}
	if tenant.IsConfigured.IBSettings {
		effective.IBSettings = tenant.IBSettings
		sources[entity.SectionIB] = sectionSourceTenant
	}
	if tenant.IsConfigured.CopyTradeSettings {
		effective.CopyTradeSettings = tenant.CopyTradeSettings
		sources[entity.SectionCopyTrade] = sectionSourceTenant
	}
	if tenant.IsConfigured.PropFirmSettings {
		effective.PropFirmSettings = tenant.PropFirmSettings
		sources[entity.SectionPropFirm] = sectionSourceTenant
	}
	return effective, sources
}

func toEffectiveResponse(adminId uuid.UUID, effective *entity.AdminSettings, sources map[string]string) *dto.EffectiveSettingsResponse {
	return &dto.EffectiveSettingsResponse{
		AdminId:           adminId,
		BankSettings:      effective.BankSettings,
		ForexCharges:      effective.ForexCharges,
		ThemeSettings:     effective.ThemeSettings,
		EmailTemplates:    effective.EmailTemplates,
		BonusSettings:     effective.BonusSettings,
		AccountTypes:      effective.AccountTypes,
		IBSettings:        effective.IBSettings,
		CopyTradeSettings: effective.CopyTradeSettings,
		PropFirmSettings:  effective.PropFirmSettings,
		IsConfigured:      effective.IsConfigured,
		SectionSources:    sources,
	}
}

func (s *settingsService) superAdminDefaults(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.AdminSettings, error) {
	super, err := uow.AdminRepository().FindOne(ctx, specification.ByRole{Role: string(entity.AdminRoleSuperAdmin)})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if super == nil {
		return entity.NewAdminSettings(uuid.Nil), nil
	}

	settings, err := uow.SettingsRepository().FindOne(ctx, specification.ByAdminID{AdminID: super.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if settings == nil {
		return entity.NewAdminSettings(super.Id), nil
	}
	return settings, nil
}

func (s *settingsService) resolveForAdmin(ctx context.Context, uow unitofwork.UnitOfWork, adminId uuid.UUID) (*dto.EffectiveSettingsResponse, error) {
	defaults, err := s.superAdminDefaults(ctx, uow)
	if err != nil {
		return nil, err
	}

	tenant, err := uow.SettingsRepository().FindOne(ctx, specification.ByAdminID{AdminID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	effective, sources := ResolveEffective(tenant, defaults)
	return toEffectiveResponse(adminId, effective, sources), nil
}

func (s *settingsService) GetEffectiveSettings(ctx context.Context, adminId uuid.UUID) (*dto.EffectiveSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}
	return s.resolveForAdmin(ctx, uow, adminId)
}

func (s *settingsService) GetSettingsBySlug(ctx context.Context, slug string) (*dto.BrandedSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Brand not found")
	}

	settings, err := s.resolveForAdmin(ctx, uow, admin.Id)
	if err != nil {
		return nil, err
	}

	return &dto.BrandedSettingsResponse{
		Brand: dto.BrandResponse{
			AdminId:   admin.Id,
			BrandName: admin.BrandName,
			Logo:      admin.Logo,
			UrlSlug:   admin.UrlSlug,
		},
		Settings: *settings,
	}, nil
}

func (s *settingsService) GetSettingsForUser(ctx context.Context, userId uuid.UUID) (*dto.UserSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	defaults, err := s.superAdminDefaults(ctx, uow)
	if err != nil {
		return nil, err
	}

	if user.AssignedAdmin == nil {
		effective, sources := ResolveEffective(nil, defaults)
		return &dto.UserSettingsResponse{
			Settings:                *toEffectiveResponse(defaults.AdminId, effective, sources),
			UsingSuperAdminSettings: true,
		}, nil
	}

	tenant, err := uow.SettingsRepository().FindOne(ctx, specification.ByAdminID{AdminID: *user.AssignedAdmin})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	effective, sources := ResolveEffective(tenant, defaults)
	usingDefaults := true
	for _, source := range sources {
		if source == sectionSourceTenant {
			usingDefaults = false
			break
		}
	}

	return &dto.UserSettingsResponse{
		Settings:                *toEffectiveResponse(*user.AssignedAdmin, effective, sources),
		UsingSuperAdminSettings: usingDefaults,
	}, nil
}

// updateSection upserts the tenant row and applies one section mutation.
// The mutation also flips the matching configured flag.
func (s *settingsService) updateSection(ctx context.Context, adminId uuid.UUID, mutate func(*entity.AdminSettings)) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return apperr.Internal(err)
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}

	settings, err := uow.SettingsRepository().FindOne(ctx, specification.ByAdminID{AdminID: adminId})
	if err != nil {
		return apperr.Internal(err)
	}

	if settings == nil {
		settings = entity.NewAdminSettings(adminId)
		settings.Id = uuid.New()
		settings.CreatedAt = time.Now()
		settings.UpdatedAt = time.Now()
		mutate(settings)
		if err := uow.SettingsRepository().Create(ctx, settings); err != nil {
			return apperr.Internal(err)
		}
		return nil
	}

	mutate(settings)
	settings.UpdatedAt = time.Now()
	if err := uow.SettingsRepository().Update(ctx, settings); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *settingsService) UpdateBankSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateBankSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.BankSettings = req.BankSettings
		settings.IsConfigured.BankSettings = true
	})
}

func (s *settingsService) UpdateForexCharges(ctx context.Context, adminId uuid.UUID, req *dto.UpdateForexChargesRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.ForexCharges = req.Charges
		settings.IsConfigured.ForexCharges = true
	})
}

func (s *settingsService) UpdateThemeSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateThemeSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.ThemeSettings = req.ThemeSettings
		settings.IsConfigured.ThemeSettings = true
	})
}

func (s *settingsService) UpdateEmailTemplates(ctx context.Context, adminId uuid.UUID, req *dto.UpdateEmailTemplatesRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.EmailTemplates = req.EmailTemplates
		settings.IsConfigured.EmailTemplates = true
	})
}

func (s *settingsService) UpdateBonusSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateBonusSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.BonusSettings = req.Bonuses
		settings.IsConfigured.BonusSettings = true
	})
}

func (s *settingsService) UpdateAccountTypes(ctx context.Context, adminId uuid.UUID, req *dto.UpdateAccountTypesRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.AccountTypes = req.AccountTypes
		settings.IsConfigured.AccountTypes = true
	})
}

func (s *settingsService) UpdateIBSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateIBSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.IBSettings = req.IBSettings
		settings.IsConfigured.IBSettings = true
	})
}

func (s *settingsService) UpdateCopyTradeSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdateCopyTradeSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.CopyTradeSettings = req.CopyTradeSettings
		settings.IsConfigured.CopyTradeSettings = true
	})
}

func (s *settingsService) UpdatePropFirmSettings(ctx context.Context, adminId uuid.UUID, req *dto.UpdatePropFirmSettingsRequest) error {
	return s.updateSection(ctx, adminId, func(settings *entity.AdminSettings) {
		settings.PropFirmSettings = req.PropFirmSettings
		settings.IsConfigured.PropFirmSettings = true
	})
}
