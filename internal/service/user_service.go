package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	CreateUser(ctx context.Context, actor *entity.Admin, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	ListUsers(ctx context.Context, actor *entity.Admin, query *dto.ListUsersQuery) ([]*dto.UserResponse, int64, error)
	GetUser(ctx context.Context, actor *entity.Admin, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, actor *entity.Admin, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	TransferUser(ctx context.Context, actor *entity.Admin, req *dto.TransferUserRequest) error
	SetUserPassword(ctx context.Context, actor *entity.Admin, req *dto.SetUserPasswordRequest) error
	BlockUser(ctx context.Context, actor *entity.Admin, req *dto.BlockUserRequest) error
	UnblockUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error
	BanUser(ctx context.Context, actor *entity.Admin, req *dto.BanUserRequest) error
	UnbanUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error
	DeleteUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error
	DashboardStats(ctx context.Context, actor *entity.Admin) (*dto.DashboardStatsResponse, error)
	LoginAsUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) (*dto.LoginAsUserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IEventPublisher
	jwtConfig  config.JWTConfig
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisher IEventPublisher, jwtConfig config.JWTConfig) IUserService {
	return &userService{
		uowFactory: uowFactory,
		publisher:  publisher,
		jwtConfig:  jwtConfig,
	}
}

func (s *userService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewEvent(eventType, data))
	}
}

func generateAccountNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08d", n), nil
}

func toUserResponse(user *entity.User, walletBalance float64) *dto.UserResponse {
	return &dto.UserResponse{
		Id:            user.Id,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		AssignedAdmin: user.AssignedAdmin,
		AdminUrlSlug:  user.AdminUrlSlug,
		IsBlocked:     user.IsBlocked,
		BlockReason:   user.BlockReason,
		IsBanned:      user.IsBanned,
		BanReason:     user.BanReason,
		KycApproved:   user.KycApproved,
		WalletBalance: walletBalance,
		CreatedAt:     user.CreatedAt,
	}
}

// findOwnedUser resolves the user and enforces tenant scoping for
// non-super actors.
func (s *userService) findOwnedUser(ctx context.Context, uow unitofwork.UnitOfWork, actor *entity.Admin, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	if !actor.IsSuperAdmin() {
		if user.AssignedAdmin == nil || *user.AssignedAdmin != actor.Id {
			return nil, apperr.Forbidden("User not assigned to you")
		}
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, actor *entity.Admin, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use")
	}

	var assignedAdmin *uuid.UUID
	var adminSlug string
	switch {
	case actor.IsSuperAdmin():
		if req.AssignedAdmin != nil {
			target, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: *req.AssignedAdmin})
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if target == nil || target.Role != entity.AdminRoleAdmin {
				return nil, apperr.NotFound("Assigned admin not found")
			}
			assignedAdmin = req.AssignedAdmin
			adminSlug = target.UrlSlug
		}
	default:
		assignedAdmin = &actor.Id
		adminSlug = actor.UrlSlug
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		PasswordHash:  string(hash),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		AssignedAdmin: assignedAdmin,
		AdminUrlSlug:  adminSlug,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	accountNumber, err := generateAccountNumber()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	wallet := &entity.UserWallet{
		Id:        uuid.New(),
		UserId:    user.Id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateWallet(ctx, wallet); err != nil {
		return nil, apperr.Internal(err)
	}

	account := &entity.TradingAccount{
		Id:            uuid.New(),
		UserId:        user.Id,
		AccountNumber: accountNumber,
		Leverage:      100,
		Status:        entity.TradingAccountActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.UserRepository().CreateTradingAccount(ctx, account); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	s.emit(ctx, events.TypeUserCreated, map[string]interface{}{
		"user_id":    user.Id.String(),
		"email":      user.Email,
		"first_name": user.FirstName,
	})
	return toUserResponse(user, 0), nil
}

func (s *userService) ListUsers(ctx context.Context, actor *entity.Admin, query *dto.ListUsersQuery) ([]*dto.UserResponse, int64, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	scope := make([]specification.Specification, 0, 2)
	switch {
	case actor.IsSuperAdmin():
		// "super" selects the pseudo tenant of directly assigned users.
		if query.AdminId == "super" {
			scope = append(scope, specification.AssignedToSuperAdmin{})
		} else if query.AdminId != "" {
			adminId, err := uuid.Parse(query.AdminId)
			if err != nil {
				return nil, 0, apperr.InvalidInput("Invalid admin id")
			}
			scope = append(scope, specification.AssignedToAdmin{AdminID: adminId})
		}
	default:
		scope = append(scope, specification.AssignedToAdmin{AdminID: actor.Id})
	}
	if query.Search != "" {
		scope = append(scope, specification.SearchUsers{Query: query.Search})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.UserRepository().Count(ctx, scope...)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	listSpecs := append(scope,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: query.Offset},
	)
	users, err := uow.UserRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	out := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		balance := 0.0
		wallet, err := uow.UserRepository().FindWallet(ctx, specification.ByUserID{UserID: user.Id})
		if err != nil {
			return nil, 0, apperr.Internal(err)
		}
		if wallet != nil {
			balance = wallet.Balance
		}
		out = append(out, toUserResponse(user, balance))
	}
	return out, total, nil
}

func (s *userService) GetUser(ctx context.Context, actor *entity.Admin, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	balance := 0.0
	wallet, err := uow.UserRepository().FindWallet(ctx, specification.ByUserID{UserID: user.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if wallet != nil {
		balance = wallet.Balance
	}
	return toUserResponse(user, balance), nil
}

func (s *userService) UpdateUser(ctx context.Context, actor *entity.Admin, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, req.Id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}
	return toUserResponse(user, 0), nil
}

// TransferUser reassigns a user between tenants. Without TransferFunds the
// wallet is zeroed and the forfeiture recorded in the ledger so tenant
// books stay reconcilable.
func (s *userService) TransferUser(ctx context.Context, actor *entity.Admin, req *dto.TransferUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return apperr.Internal(err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	var targetSlug string
	if req.ToAdminId != nil {
		target, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: *req.ToAdminId})
		if err != nil {
			return apperr.Internal(err)
		}
		if target == nil || target.Role != entity.AdminRoleAdmin {
			return apperr.NotFound("Target admin not found")
		}
		targetSlug = target.UrlSlug
	}

	previousAdmin := ""
	if user.AssignedAdmin != nil {
		previousAdmin = user.AssignedAdmin.String()
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	if !req.TransferFunds {
		wallet, err := uow.UserRepository().FindWallet(ctx, specification.ByUserID{UserID: user.Id})
		if err != nil {
			return apperr.Internal(err)
		}
		if wallet != nil && wallet.Balance > 0 {
			forfeited := wallet.Balance
			wallet.Balance = 0
			wallet.UpdatedAt = time.Now()
			if err := uow.UserRepository().UpdateWallet(ctx, wallet); err != nil {
				return apperr.Internal(err)
			}
			ledger := &entity.AdminWalletTransaction{
				Id:           uuid.New(),
				FromAdminId:  &actor.Id,
				ToUserId:     &user.Id,
				Type:         entity.TxAdjustment,
				Amount:       -forfeited,
				BalanceAfter: 0,
				Description:  "Balance forfeited on tenant transfer",
				CreatedAt:    time.Now(),
			}
			if err := uow.WalletRepository().CreateTransaction(ctx, ledger); err != nil {
				return apperr.Internal(err)
			}
		}
	}

	user.AssignedAdmin = req.ToAdminId
	user.AdminUrlSlug = targetSlug
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	newAdmin := ""
	if req.ToAdminId != nil {
		newAdmin = req.ToAdminId.String()
	}
	actionLog := &entity.AdminActionLog{
		Id:            uuid.New(),
		AdminId:       actor.Id,
		Action:        "USER_TRANSFER",
		TargetType:    "user",
		TargetId:      user.Id.String(),
		PreviousValue: map[string]interface{}{"assignedAdmin": previousAdmin},
		NewValue:      map[string]interface{}{"assignedAdmin": newAdmin, "transferFunds": req.TransferFunds},
		CreatedAt:     time.Now(),
	}
	if err := uow.AdminRepository().CreateActionLog(ctx, actionLog); err != nil {
		return apperr.Internal(err)
	}

	return uow.Commit()
}

func (s *userService) SetUserPassword(ctx context.Context, actor *entity.Admin, req *dto.SetUserPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, req.UserId)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	return uow.UserRepository().UpdatePassword(ctx, user.Id, string(hash))
}

func (s *userService) BlockUser(ctx context.Context, actor *entity.Admin, req *dto.BlockUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, req.UserId)
	if err != nil {
		return err
	}

	user.IsBlocked = true
	user.BlockReason = req.Reason
	user.UpdatedAt = time.Now()
	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) UnblockUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, userId)
	if err != nil {
		return err
	}

	user.IsBlocked = false
	user.BlockReason = ""
	user.UpdatedAt = time.Now()
	return uow.UserRepository().Update(ctx, user)
}

// BanUser implies a block. Unbanning later does not lift the block, that
// stays a separate decision.
func (s *userService) BanUser(ctx context.Context, actor *entity.Admin, req *dto.BanUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, req.UserId)
	if err != nil {
		return err
	}

	user.IsBanned = true
	user.BanReason = req.Reason
	user.IsBlocked = true
	if user.BlockReason == "" {
		user.BlockReason = req.Reason
	}
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	s.emit(ctx, events.TypeUserBanned, map[string]interface{}{
		"user_id":    user.Id.String(),
		"email":      user.Email,
		"first_name": user.FirstName,
		"reason":     req.Reason,
	})
	return nil
}

func (s *userService) UnbanUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, userId)
	if err != nil {
		return err
	}

	user.IsBanned = false
	user.BanReason = ""
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return apperr.Internal(err)
	}

	s.emit(ctx, events.TypeUserUnbanned, map[string]interface{}{
		"user_id":    user.Id.String(),
		"email":      user.Email,
		"first_name": user.FirstName,
	})
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, userId)
	if err != nil {
		return err
	}
	return uow.UserRepository().Delete(ctx, user.Id)
}

func (s *userService) DashboardStats(ctx context.Context, actor *entity.Admin) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats := &dto.DashboardStatsResponse{}

	scope := make([]specification.Specification, 0, 1)
	if !actor.IsSuperAdmin() {
		scope = append(scope, specification.AssignedToAdmin{AdminID: actor.Id})
	}

	total, err := uow.UserRepository().Count(ctx, scope...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.TotalUsers = total

	blocked, err := uow.UserRepository().Count(ctx, append(scope, specification.Filter("is_blocked", true))...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.BlockedUsers = blocked

	kycSpecs := []specification.Specification{specification.ByStatus{Status: string(entity.KYCStatusPending)}}
	accountSpecs := []specification.Specification{specification.ByStatus{Status: string(entity.TradingAccountActive)}}
	if !actor.IsSuperAdmin() {
		users, err := uow.UserRepository().FindAll(ctx, specification.AssignedToAdmin{AdminID: actor.Id})
		if err != nil {
			return nil, apperr.Internal(err)
		}
		ids := make([]uuid.UUID, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.Id)
		}
		if len(ids) == 0 {
			stats.WalletBalance = s.walletBalance(ctx, uow, actor.Id)
			return stats, nil
		}
		kycSpecs = append(kycSpecs, specification.ByUserIDs{IDs: ids})
		accountSpecs = append(accountSpecs, specification.ByUserIDs{IDs: ids})
	}

	pendingKyc, err := uow.KYCRepository().Count(ctx, kycSpecs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.PendingKyc = pendingKyc

	accounts, err := uow.UserRepository().FindTradingAccounts(ctx, accountSpecs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.ActiveAccounts = int64(len(accounts))

	depositSpecs := []specification.Specification{
		specification.ByTransactionType{Type: string(entity.TxAdminToUser)},
	}
	withdrawalSpecs := []specification.Specification{
		specification.ByTransactionType{Type: string(entity.TxAdjustment)},
		specification.ToUsersOnly{},
	}
	if !actor.IsSuperAdmin() {
		depositSpecs = append(depositSpecs, specification.Filter("from_admin_id", actor.Id))
		withdrawalSpecs = append(withdrawalSpecs, specification.Filter("from_admin_id", actor.Id))
	}

	deposits, err := uow.WalletRepository().SumTransactionAmounts(ctx, depositSpecs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	stats.TotalDeposits = deposits

	withdrawals, err := uow.WalletRepository().SumTransactionAmounts(ctx, withdrawalSpecs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if withdrawals < 0 {
		withdrawals = -withdrawals
	}
	stats.TotalWithdrawals = withdrawals

	stats.WalletBalance = s.walletBalance(ctx, uow, actor.Id)
	return stats, nil
}

func (s *userService) walletBalance(ctx context.Context, uow unitofwork.UnitOfWork, adminId uuid.UUID) float64 {
	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: adminId})
	if err != nil || wallet == nil {
		return 0
	}
	return wallet.Balance
}

// LoginAsUser issues a short-lived user token for support impersonation
// and records the access in the action log.
func (s *userService) LoginAsUser(ctx context.Context, actor *entity.Admin, userId uuid.UUID) (*dto.LoginAsUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findOwnedUser(ctx, uow, actor, userId)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{
		"user_id":      user.Id.String(),
		"acting_admin": actor.Id.String(),
		"exp":          time.Now().Add(time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, apperr.Internal(err)
	}

	actionLog := &entity.AdminActionLog{
		Id:         uuid.New(),
		AdminId:    actor.Id,
		Action:     "LOGIN_AS_USER",
		TargetType: "user",
		TargetId:   user.Id.String(),
		CreatedAt:  time.Now(),
	}
	if err := uow.AdminRepository().CreateActionLog(ctx, actionLog); err != nil {
		return nil, apperr.Internal(err)
	}

	s.emit(ctx, events.TypeAdminLoginAsUser, map[string]interface{}{
		"user_id":  user.Id.String(),
		"admin_id": actor.Id.String(),
	})

	return &dto.LoginAsUserResponse{
		Token: token,
		User:  *toUserResponse(user, 0),
	}, nil
}
