package service

import (
	"context"
	"time"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	InitSuperAdmin(ctx context.Context, req *dto.InitSuperAdminRequest) (*dto.AdminProfile, error)
	GetProfile(ctx context.Context, adminId uuid.UUID) (*dto.AdminProfile, error)
	UpdateProfile(ctx context.Context, adminId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.AdminProfile, error)
	ChangePassword(ctx context.Context, adminId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtConfig  config.JWTConfig
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtConfig config.JWTConfig) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtConfig:  jwtConfig,
	}
}

func toAdminProfile(admin *entity.Admin) dto.AdminProfile {
	return dto.AdminProfile{
		Id:                 admin.Id,
		Email:              admin.Email,
		FirstName:          admin.FirstName,
		LastName:           admin.LastName,
		Phone:              admin.Phone,
		Role:               string(admin.Role),
		Status:             string(admin.Status),
		UrlSlug:            admin.UrlSlug,
		BrandName:          admin.BrandName,
		Logo:               admin.Logo,
		Permissions:        admin.Permissions,
		SidebarPermissions: admin.SidebarPermissions,
		LastLoginAt:        admin.LastLoginAt,
		CreatedAt:          admin.CreatedAt,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	if admin.Status != entity.AdminStatusActive {
		return nil, apperr.Forbidden("Account suspended")
	}

	now := time.Now()
	if err := uow.AdminRepository().UpdateLastLogin(ctx, admin.Id, now); err != nil {
		return nil, apperr.Internal(err)
	}
	admin.LastLoginAt = &now

	token, err := serverutils.IssueToken(s.jwtConfig.Secret, s.jwtConfig.TTL, admin)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(admin)
	s.attachWalletBalance(ctx, uow, admin, &profile)

	return &dto.LoginResponse{Token: token, Admin: profile}, nil
}

// InitSuperAdmin bootstraps the very first account. It refuses to run once
// any super admin exists, so it is safe to leave the endpoint exposed.
func (s *authService) InitSuperAdmin(ctx context.Context, req *dto.InitSuperAdminRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.AdminRepository().Count(ctx, specification.ByRole{Role: string(entity.AdminRoleSuperAdmin)})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("Super admin already initialized")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	admin := &entity.Admin{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         entity.AdminRoleSuperAdmin,
		Status:       entity.AdminStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

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

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	profile := toAdminProfile(admin)
	return &profile, nil
}

func (s *authService) GetProfile(ctx context.Context, adminId uuid.UUID) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}

	profile := toAdminProfile(admin)
	s.attachWalletBalance(ctx, uow, admin, &profile)
	return &profile, nil
}

func (s *authService) UpdateProfile(ctx context.Context, adminId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.AdminProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
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
	s.attachWalletBalance(ctx, uow, admin, &profile)
	return &profile, nil
}

func (s *authService) ChangePassword(ctx context.Context, adminId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return apperr.Internal(err)
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}

	return uow.AdminRepository().UpdatePassword(ctx, adminId, string(hash))
}

// attachWalletBalance fills WalletBalance for tenant admins. Super admins
// distribute from an unlimited source so the field stays nil for them.
func (s *authService) attachWalletBalance(ctx context.Context, uow unitofwork.UnitOfWork, admin *entity.Admin, profile *dto.AdminProfile) {
	if admin.Role != entity.AdminRoleAdmin {
		return
	}
	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: admin.Id})
	if err != nil || wallet == nil {
		return
	}
	profile.WalletBalance = &wallet.Balance
}
