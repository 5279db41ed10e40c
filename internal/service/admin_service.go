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
	"golang.org/x/crypto/bcrypt"
)

type IAdminService interface {
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminProfile, error)
	ListAdmins(ctx context.Context) ([]*dto.AdminListItem, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*dto.AdminListItem, error)
	UpdateAdmin(ctx context.Context, req *dto.UpdateAdminRequest) (*dto.AdminProfile, error)
	UpdatePermissions(ctx context.Context, req *dto.UpdatePermissionsRequest) (*dto.AdminProfile, error)
	SuspendAdmin(ctx context.Context, id uuid.UUID) error
	ActivateAdmin(ctx context.Context, id uuid.UUID) error
	ResetAdminPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	DeleteAdmin(ctx context.Context, id uuid.UUID) error

	CheckSlugAvailability(ctx context.Context, slug string) (*dto.SlugAvailabilityResponse, error)
	GetBrandBySlug(ctx context.Context, slug string) (*dto.BrandResponse, error)

	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.AdminProfile, error)
	ListEmployees(ctx context.Context) ([]*dto.AdminProfile, error)
	UpdateEmployee(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.AdminProfile, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error

	ListActionLogs(ctx context.Context, limit, offset int) ([]*entity.AdminActionLog, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

func (s *adminService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use")
	}

	taken, err := uow.AdminRepository().FindOne(ctx, specification.BySlug{Slug: req.UrlSlug})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if taken != nil {
		return nil, apperr.Conflict("URL slug already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = map[string]bool{}
	}

	admin := &entity.Admin{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         entity.AdminRoleAdmin,
		Status:       entity.AdminStatusActive,
		UrlSlug:      req.UrlSlug,
		BrandName:    req.BrandName,
		Logo:         req.Logo,
		Permissions:  permissions,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Admin, wallet and settings rows are created together so a tenant is
	// never observable in a half-initialized state.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.AdminRepository().Create(ctx, admin); err != nil {
		return nil, apperr.Internal(err)
	}

	wallet := &entity.AdminWallet{
		Id:        uuid.New(),
		AdminId:   admin.Id,
		Status:    entity.WalletStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.WalletRepository().CreateWallet(ctx, wallet); err != nil {
		return nil, apperr.Internal(err)
	}

	settings := entity.NewAdminSettings(admin.Id)
	settings.Id = uuid.New()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = time.Now()
	if err := uow.SettingsRepository().Create(ctx, settings); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(admin)
	return &profile, nil
}

func (s *adminService) ListAdmins(ctx context.Context) ([]*dto.AdminListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admins, err := uow.AdminRepository().FindAll(ctx,
		specification.ByRole{Role: string(entity.AdminRoleAdmin)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	items := make([]*dto.AdminListItem, 0, len(admins))
	for _, admin := range admins {
		item, err := s.buildListItem(ctx, uow, admin)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*dto.AdminListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}
	return s.buildListItem(ctx, uow, admin)
}

func (s *adminService) buildListItem(ctx context.Context, uow unitofwork.UnitOfWork, admin *entity.Admin) (*dto.AdminListItem, error) {
	item := &dto.AdminListItem{Profile: toAdminProfile(admin)}

	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: admin.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if wallet != nil {
		item.WalletBalance = wallet.Balance
		item.WalletStatus = string(wallet.Status)
	}

	count, err := uow.UserRepository().Count(ctx, specification.AssignedToAdmin{AdminID: admin.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	item.UserCount = count
	return item, nil
}

func (s *adminService) UpdateAdmin(ctx context.Context, req *dto.UpdateAdminRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}

	if req.UrlSlug != "" && req.UrlSlug != admin.UrlSlug {
		taken, err := uow.AdminRepository().FindOne(ctx, specification.BySlug{Slug: req.UrlSlug})
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if taken != nil {
			return nil, apperr.Conflict("URL slug already taken")
		}
		admin.UrlSlug = req.UrlSlug
	}

	if req.FirstName != "" {
		admin.FirstName = req.FirstName
	}
	if req.LastName != "" {
		admin.LastName = req.LastName
	}
	if req.Phone != "" {
		admin.Phone = req.Phone
	}
	if req.BrandName != "" {
		admin.BrandName = req.BrandName
	}
	if req.Logo != "" {
		admin.Logo = req.Logo
	}
	admin.UpdatedAt = time.Now()

	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(admin)
	return &profile, nil
}

func (s *adminService) UpdatePermissions(ctx context.Context, req *dto.UpdatePermissionsRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}
	if admin.IsSuperAdmin() {
		return nil, apperr.Forbidden("Super admin permissions cannot be changed")
	}

	admin.Permissions = req.Permissions
	admin.UpdatedAt = time.Now()

	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(admin)
	return &profile, nil
}

// SuspendAdmin freezes the tenant wallet together with the account so no
// distribution can happen while access is revoked.
func (s *adminService) SuspendAdmin(ctx context.Context, id uuid.UUID) error {
	return s.setAdminStatus(ctx, id, entity.AdminStatusSuspended, entity.WalletStatusFrozen)
}

func (s *adminService) ActivateAdmin(ctx context.Context, id uuid.UUID) error {
	return s.setAdminStatus(ctx, id, entity.AdminStatusActive, entity.WalletStatusActive)
}

func (s *adminService) setAdminStatus(ctx context.Context, id uuid.UUID, status entity.AdminStatus, walletStatus entity.WalletStatus) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperr.Internal(err)
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}
	if admin.IsSuperAdmin() {
		return apperr.Forbidden("Super admin status cannot be changed")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.AdminRepository().UpdateStatus(ctx, id, string(status)); err != nil {
		return apperr.Internal(err)
	}
	if err := uow.WalletRepository().UpdateWalletStatus(ctx, id, string(walletStatus)); err != nil {
		return apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *adminService) ResetAdminPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return apperr.Internal(err)
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	return uow.AdminRepository().UpdatePassword(ctx, req.Id, string(hash))
}

// DeleteAdmin removes a tenant and its wallet, ledger and settings rows.
// It refuses while users are still assigned so funds and history cannot
// be orphaned.
func (s *adminService) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperr.Internal(err)
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}
	if admin.IsSuperAdmin() {
		return apperr.Forbidden("Super admin cannot be deleted")
	}

	userCount, err := uow.UserRepository().Count(ctx, specification.AssignedToAdmin{AdminID: id})
	if err != nil {
		return apperr.Internal(err)
	}
	if userCount > 0 {
		return apperr.Conflict("Admin still has assigned users")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.WalletRepository().DeleteTransactionsByAdmin(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	if err := uow.WalletRepository().DeleteWalletByAdmin(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	if err := uow.SettingsRepository().DeleteByAdmin(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	if err := uow.AdminRepository().Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *adminService) CheckSlugAvailability(ctx context.Context, slug string) (*dto.SlugAvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.SlugAvailabilityResponse{Slug: slug, Available: existing == nil}, nil
}

func (s *adminService) GetBrandBySlug(ctx context.Context, slug string) (*dto.BrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Brand not found")
	}
	return &dto.BrandResponse{
		AdminId:   admin.Id,
		BrandName: admin.BrandName,
		Logo:      admin.Logo,
		UrlSlug:   admin.UrlSlug,
	}, nil
}

func (s *adminService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	employee := &entity.Admin{
		Id:                 uuid.New(),
		Email:              req.Email,
		PasswordHash:       string(hash),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		Role:               entity.AdminRoleEmployee,
		Status:             entity.AdminStatusActive,
		SidebarPermissions: req.SidebarPermissions,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := uow.AdminRepository().Create(ctx, employee); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(employee)
	return &profile, nil
}

func (s *adminService) ListEmployees(ctx context.Context) ([]*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employees, err := uow.AdminRepository().FindAll(ctx,
		specification.ByRole{Role: string(entity.AdminRoleEmployee)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	profiles := make([]*dto.AdminProfile, 0, len(employees))
	for _, employee := range employees {
		profile := toAdminProfile(employee)
		profiles = append(profiles, &profile)
	}
	return profiles, nil
}

func (s *adminService) UpdateEmployee(ctx context.Context, req *dto.UpdateEmployeeRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if employee == nil || employee.Role != entity.AdminRoleEmployee {
		return nil, apperr.NotFound("Employee not found")
	}

	if req.FirstName != "" {
		employee.FirstName = req.FirstName
	}
	if req.LastName != "" {
		employee.LastName = req.LastName
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.SidebarPermissions != nil {
		employee.SidebarPermissions = req.SidebarPermissions
	}
	employee.UpdatedAt = time.Now()

	if err := uow.AdminRepository().Update(ctx, employee); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(employee)
	return &profile, nil
}

func (s *adminService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	employee, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperr.Internal(err)
	}
	if employee == nil || employee.Role != entity.AdminRoleEmployee {
		return apperr.NotFound("Employee not found")
	}
	return uow.AdminRepository().Delete(ctx, id)
}

func (s *adminService) ListActionLogs(ctx context.Context, limit, offset int) ([]*entity.AdminActionLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.AdminRepository().FindActionLogs(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}
