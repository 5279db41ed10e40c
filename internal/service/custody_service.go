package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/pkg/audit"
	"fx-backoffice-be/pkg/events"

	"github.com/google/uuid"
)

type ICustodyService interface {
	GetWallet(ctx context.Context, actor *entity.Admin, adminId uuid.UUID) (*dto.WalletResponse, error)
	RequestFunds(ctx context.Context, actor *entity.Admin, req *dto.CreateFundRequestRequest) (*dto.FundRequestResponse, error)
	ListFundRequests(ctx context.Context, actor *entity.Admin, status string, limit, offset int) ([]*dto.FundRequestResponse, error)
	ProcessFundRequest(ctx context.Context, processorId uuid.UUID, req *dto.ProcessFundRequestRequest) (*dto.FundRequestResponse, error)
	FundWallet(ctx context.Context, actorId uuid.UUID, req *dto.FundWalletRequest) (*dto.WalletResponse, error)
	DeductWallet(ctx context.Context, actorId uuid.UUID, req *dto.DeductWalletRequest) (*dto.WalletResponse, error)

	AddUserFunds(ctx context.Context, actor *entity.Admin, req *dto.UserFundsRequest) error
	DeductUserFunds(ctx context.Context, actor *entity.Admin, req *dto.UserFundsRequest) error

	AddAccountFunds(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error
	DeductAccountFunds(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error
	AddAccountCredit(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error
	RemoveAccountCredit(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error
	AccountSummary(ctx context.Context, req *dto.AccountSummaryRequest) (*dto.AccountSummaryResponse, error)

	ListTransactions(ctx context.Context, actor *entity.Admin, txType string, limit, offset int) ([]*dto.TransactionResponse, error)
}

// walletLocks serializes balance mutations per wallet within this process.
// The database transaction still guards against concurrent writers from
// other instances.
type walletLocks struct {
	locks sync.Map
}

func (l *walletLocks) lock(id uuid.UUID) func() {
	m, _ := l.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// lockPair takes both wallet locks in a fixed order so two transfers
// touching the same wallets from opposite sides cannot deadlock.
func (l *walletLocks) lockPair(a, b uuid.UUID) func() {
	if a == b {
		return l.lock(a)
	}
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	unlockA := l.lock(a)
	unlockB := l.lock(b)
	return func() {
		unlockB()
		unlockA()
	}
}

type custodyService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IEventPublisher
	recorder   *audit.Recorder
	locks      walletLocks
}

func NewCustodyService(uowFactory unitofwork.RepositoryFactory, publisher IEventPublisher, recorder *audit.Recorder) ICustodyService {
	return &custodyService{
		uowFactory: uowFactory,
		publisher:  publisher,
		recorder:   recorder,
	}
}

func (s *custodyService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewEvent(eventType, data))
	}
	s.recorder.Record(ctx, eventType, data)
}

func toWalletResponse(wallet *entity.AdminWallet, unlimited bool) *dto.WalletResponse {
	return &dto.WalletResponse{
		AdminId:           wallet.AdminId,
		Balance:           wallet.Balance,
		TotalReceived:     wallet.TotalReceived,
		TotalGivenToUsers: wallet.TotalGivenToUsers,
		Status:            string(wallet.Status),
		Unlimited:         unlimited,
	}
}

func toFundRequestResponse(r *entity.AdminFundRequest) *dto.FundRequestResponse {
	return &dto.FundRequestResponse{
		Id:          r.Id,
		AdminId:     r.AdminId,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      string(r.Status),
		ProcessedBy: r.ProcessedBy,
		ProcessedAt: r.ProcessedAt,
		Remarks:     r.Remarks,
		CreatedAt:   r.CreatedAt,
	}
}

func (s *custodyService) GetWallet(ctx context.Context, actor *entity.Admin, adminId uuid.UUID) (*dto.WalletResponse, error) {
	if !actor.IsSuperAdmin() && actor.Id != adminId {
		return nil, apperr.Forbidden("Access denied")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if wallet == nil {
		return nil, apperr.NotFound("Wallet not found")
	}

	target, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	unlimited := target != nil && target.IsSuperAdmin()
	return toWalletResponse(wallet, unlimited), nil
}

func (s *custodyService) RequestFunds(ctx context.Context, actor *entity.Admin, req *dto.CreateFundRequestRequest) (*dto.FundRequestResponse, error) {
	// The super admin is the source of funds, a request from that side
	// would be self-approved.
	if actor.IsSuperAdmin() {
		return nil, apperr.Forbidden("Super admin cannot request funds")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request := &entity.AdminFundRequest{
		Id:          uuid.New(),
		AdminId:     actor.Id,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      entity.FundRequestPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.WalletRepository().CreateFundRequest(ctx, request); err != nil {
		return nil, apperr.Internal(err)
	}

	s.publish(ctx, events.TypeFundRequestCreated, map[string]interface{}{
		"request_id": request.Id.String(),
		"admin_id":   actor.Id.String(),
		"amount":     req.Amount,
	})
	return toFundRequestResponse(request), nil
}

func (s *custodyService) ListFundRequests(ctx context.Context, actor *entity.Admin, status string, limit, offset int) ([]*dto.FundRequestResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if !actor.IsSuperAdmin() {
		specs = append(specs, specification.ByAdminID{AdminID: actor.Id})
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	requests, err := uow.WalletRepository().FindFundRequests(ctx, specs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]*dto.FundRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toFundRequestResponse(r))
	}
	return out, nil
}

// ProcessFundRequest settles a pending request exactly once. Approval
// credits the wallet and writes the matching ledger entry in the same
// transaction.
func (s *custodyService) ProcessFundRequest(ctx context.Context, processorId uuid.UUID, req *dto.ProcessFundRequestRequest) (*dto.FundRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.WalletRepository().FindFundRequest(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if request == nil {
		return nil, apperr.NotFound("Fund request not found")
	}

	unlock := s.locks.lock(request.AdminId)
	defer unlock()

	// Re-read under the lock, another processor may have settled it.
	request, err = uow.WalletRepository().FindFundRequest(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if request == nil {
		return nil, apperr.NotFound("Fund request not found")
	}
	if request.Status != entity.FundRequestPending {
		return nil, apperr.Conflict("Fund request already processed")
	}

	now := time.Now()
	request.ProcessedBy = &processorId
	request.ProcessedAt = &now
	request.Remarks = req.Remarks
	request.UpdatedAt = now

	if !req.Approve {
		request.Status = entity.FundRequestRejected
		if err := uow.WalletRepository().UpdateFundRequest(ctx, request); err != nil {
			return nil, apperr.Internal(err)
		}
		s.publish(ctx, events.TypeFundRequestRejected, map[string]interface{}{
			"request_id": request.Id.String(),
			"admin_id":   request.AdminId.String(),
			"amount":     request.Amount,
			"remarks":    request.Remarks,
		})
		return toFundRequestResponse(request), nil
	}

	request.Status = entity.FundRequestApproved

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.WalletRepository().UpdateFundRequest(ctx, request); err != nil {
		return nil, apperr.Internal(err)
	}
	if _, err := s.creditWallet(ctx, uow, processorId, request.AdminId, request.Amount, request.Description); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	s.publish(ctx, events.TypeFundRequestApproved, map[string]interface{}{
		"request_id": request.Id.String(),
		"admin_id":   request.AdminId.String(),
		"amount":     request.Amount,
	})
	return toFundRequestResponse(request), nil
}

// creditWallet applies a SUPER_TO_ADMIN grant. Caller holds the wallet
// lock and an open transaction.
func (s *custodyService) creditWallet(ctx context.Context, uow unitofwork.UnitOfWork, fromAdminId, toAdminId uuid.UUID, amount float64, description string) (*entity.AdminWallet, error) {
	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: toAdminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if wallet == nil {
		return nil, apperr.NotFound("Wallet not found")
	}

	wallet.Balance += amount
	wallet.TotalReceived += amount
	wallet.UpdatedAt = time.Now()
	if err := uow.WalletRepository().UpdateWallet(ctx, wallet); err != nil {
		return nil, apperr.Internal(err)
	}

	ledger := &entity.AdminWalletTransaction{
		Id:           uuid.New(),
		FromAdminId:  &fromAdminId,
		ToAdminId:    &toAdminId,
		Type:         entity.TxSuperToAdmin,
		Amount:       amount,
		BalanceAfter: wallet.Balance,
		Description:  description,
		CreatedAt:    time.Now(),
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, ledger); err != nil {
		return nil, apperr.Internal(err)
	}
	return wallet, nil
}

func (s *custodyService) FundWallet(ctx context.Context, actorId uuid.UUID, req *dto.FundWalletRequest) (*dto.WalletResponse, error) {
	unlock := s.locks.lock(req.AdminId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	wallet, err := s.creditWallet(ctx, uow, actorId, req.AdminId, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	s.publish(ctx, events.TypeWalletFunded, map[string]interface{}{
		"admin_id": req.AdminId.String(),
		"amount":   req.Amount,
	})
	return toWalletResponse(wallet, false), nil
}

func (s *custodyService) DeductWallet(ctx context.Context, actorId uuid.UUID, req *dto.DeductWalletRequest) (*dto.WalletResponse, error) {
	unlock := s.locks.lock(req.AdminId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: req.AdminId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if wallet == nil {
		return nil, apperr.NotFound("Wallet not found")
	}
	if wallet.Balance < req.Amount {
		return nil, apperr.InsufficientFunds("Insufficient wallet balance")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	wallet.Balance -= req.Amount
	wallet.UpdatedAt = time.Now()
	if err := uow.WalletRepository().UpdateWallet(ctx, wallet); err != nil {
		return nil, apperr.Internal(err)
	}

	ledger := &entity.AdminWalletTransaction{
		Id:           uuid.New(),
		FromAdminId:  &actorId,
		ToAdminId:    &req.AdminId,
		Type:         entity.TxAdjustment,
		Amount:       -req.Amount,
		BalanceAfter: wallet.Balance,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, ledger); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	s.publish(ctx, events.TypeWalletDeducted, map[string]interface{}{
		"admin_id": req.AdminId.String(),
		"amount":   req.Amount,
	})
	return toWalletResponse(wallet, false), nil
}

// AddUserFunds moves funds from the acting admin's wallet to a user wallet.
// The super admin distributes from an unlimited source and skips the debit.
func (s *custodyService) AddUserFunds(ctx context.Context, actor *entity.Admin, req *dto.UserFundsRequest) error {
	// Both sides of the transfer are locked. The user wallet key keeps a
	// second actor (the super admin and the assigned admin can both reach
	// the same user) from interleaving a stale read-modify-write.
	unlock := s.locks.lockPair(actor.Id, req.UserId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.resolveOwnedUser(ctx, uow, actor, req.UserId)
	if err != nil {
		return err
	}

	wallet, err := uow.WalletRepository().FindWallet(ctx, specification.ByAdminID{AdminID: actor.Id})
	if err != nil {
		return apperr.Internal(err)
	}
	if wallet == nil {
		return apperr.NotFound("Wallet not found")
	}
	if wallet.Status == entity.WalletStatusFrozen {
		return apperr.Conflict("Wallet is frozen")
	}
	if !actor.IsSuperAdmin() && wallet.Balance < req.Amount {
		return apperr.InsufficientFunds("Insufficient wallet balance")
	}

	userWallet, err := uow.UserRepository().FindWallet(ctx, specification.ByUserID{UserID: user.Id})
	if err != nil {
		return apperr.Internal(err)
	}
	if userWallet == nil {
		return apperr.NotFound("User wallet not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	if !actor.IsSuperAdmin() {
		wallet.Balance -= req.Amount
	}
	wallet.TotalGivenToUsers += req.Amount
	wallet.UpdatedAt = time.Now()
	if err := uow.WalletRepository().UpdateWallet(ctx, wallet); err != nil {
		return apperr.Internal(err)
	}

	userWallet.Balance += req.Amount
	userWallet.UpdatedAt = time.Now()
	if err := uow.UserRepository().UpdateWallet(ctx, userWallet); err != nil {
		return apperr.Internal(err)
	}

	ledger := &entity.AdminWalletTransaction{
		Id:           uuid.New(),
		FromAdminId:  &actor.Id,
		ToUserId:     &user.Id,
		Type:         entity.TxAdminToUser,
		Amount:       req.Amount,
		BalanceAfter: userWallet.Balance,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, ledger); err != nil {
		return apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Internal(err)
	}

	s.publish(ctx, events.TypeUserFundsAdded, map[string]interface{}{
		"user_id":  user.Id.String(),
		"admin_id": actor.Id.String(),
		"amount":   req.Amount,
	})
	return nil
}

func (s *custodyService) DeductUserFunds(ctx context.Context, actor *entity.Admin, req *dto.UserFundsRequest) error {
	// Only the user wallet is mutated here, so its key is the lock.
	unlock := s.locks.lock(req.UserId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.resolveOwnedUser(ctx, uow, actor, req.UserId)
	if err != nil {
		return err
	}

	userWallet, err := uow.UserRepository().FindWallet(ctx, specification.ByUserID{UserID: user.Id})
	if err != nil {
		return apperr.Internal(err)
	}
	if userWallet == nil {
		return apperr.NotFound("User wallet not found")
	}
	if userWallet.Balance < req.Amount {
		return apperr.InsufficientFunds("Insufficient user balance")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	userWallet.Balance -= req.Amount
	userWallet.UpdatedAt = time.Now()
	if err := uow.UserRepository().UpdateWallet(ctx, userWallet); err != nil {
		return apperr.Internal(err)
	}

	ledger := &entity.AdminWalletTransaction{
		Id:           uuid.New(),
		FromAdminId:  &actor.Id,
		ToUserId:     &user.Id,
		Type:         entity.TxAdjustment,
		Amount:       -req.Amount,
		BalanceAfter: userWallet.Balance,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}
	if err := uow.WalletRepository().CreateTransaction(ctx, ledger); err != nil {
		return apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Internal(err)
	}

	s.publish(ctx, events.TypeUserFundsDeducted, map[string]interface{}{
		"user_id":  user.Id.String(),
		"admin_id": actor.Id.String(),
		"amount":   req.Amount,
	})
	return nil
}

func (s *custodyService) resolveOwnedUser(ctx context.Context, uow unitofwork.UnitOfWork, actor *entity.Admin, userId uuid.UUID) (*entity.User, error) {
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

func (s *custodyService) AddAccountFunds(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error {
	return s.mutateAccount(ctx, actor, req, "ACCOUNT_FUNDS_ADD", func(account *entity.TradingAccount) error {
		account.Balance += req.Amount
		return nil
	})
}

func (s *custodyService) DeductAccountFunds(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error {
	return s.mutateAccount(ctx, actor, req, "ACCOUNT_FUNDS_DEDUCT", func(account *entity.TradingAccount) error {
		if account.Balance < req.Amount {
			return apperr.InsufficientFunds("Insufficient account balance")
		}
		account.Balance -= req.Amount
		return nil
	})
}

func (s *custodyService) AddAccountCredit(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error {
	return s.mutateAccount(ctx, actor, req, "ACCOUNT_CREDIT_ADD", func(account *entity.TradingAccount) error {
		account.Credit += req.Amount
		return nil
	})
}

func (s *custodyService) RemoveAccountCredit(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest) error {
	return s.mutateAccount(ctx, actor, req, "ACCOUNT_CREDIT_REMOVE", func(account *entity.TradingAccount) error {
		if account.Credit < req.Amount {
			return apperr.InsufficientFunds("Cannot remove more credit than available")
		}
		account.Credit -= req.Amount
		return nil
	})
}

// mutateAccount applies one balance or credit change and records it in the
// admin action log with before and after values.
func (s *custodyService) mutateAccount(ctx context.Context, actor *entity.Admin, req *dto.TradingAccountFundsRequest, action string, apply func(*entity.TradingAccount) error) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.UserRepository().FindTradingAccount(ctx, specification.ByID{ID: req.AccountId})
	if err != nil {
		return apperr.Internal(err)
	}
	if account == nil {
		return apperr.NotFound("Trading account not found")
	}

	if _, err := s.resolveOwnedUser(ctx, uow, actor, account.UserId); err != nil {
		return err
	}

	previous := map[string]interface{}{"balance": account.Balance, "credit": account.Credit}
	if err := apply(account); err != nil {
		return err
	}
	account.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdateTradingAccount(ctx, account); err != nil {
		return apperr.Internal(err)
	}

	actionLog := &entity.AdminActionLog{
		Id:            uuid.New(),
		AdminId:       actor.Id,
		Action:        action,
		TargetType:    "trading_account",
		TargetId:      account.Id.String(),
		PreviousValue: previous,
		NewValue:      map[string]interface{}{"balance": account.Balance, "credit": account.Credit},
		Reason:        req.Reason,
		CreatedAt:     time.Now(),
	}
	if err := uow.AdminRepository().CreateActionLog(ctx, actionLog); err != nil {
		return apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *custodyService) AccountSummary(ctx context.Context, req *dto.AccountSummaryRequest) (*dto.AccountSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	account, err := uow.UserRepository().FindTradingAccount(ctx, specification.ByID{ID: req.AccountId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if account == nil {
		return nil, apperr.NotFound("Trading account not found")
	}

	summary := account.Summarize(req.UsedMargin, req.FloatingPnL)
	return &dto.AccountSummaryResponse{
		AccountId:   account.Id,
		Balance:     summary.Balance,
		Credit:      summary.Credit,
		Equity:      summary.Equity,
		UsedMargin:  summary.UsedMargin,
		FreeMargin:  summary.FreeMargin,
		MarginLevel: summary.MarginLevel,
		FloatingPnL: summary.FloatingPnL,
	}, nil
}

func (s *custodyService) ListTransactions(ctx context.Context, actor *entity.Admin, txType string, limit, offset int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if !actor.IsSuperAdmin() {
		specs = append(specs, specification.InvolvingAdmin{AdminID: actor.Id})
	}
	if txType != "" {
		specs = append(specs, specification.ByTransactionType{Type: txType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	transactions, err := uow.WalletRepository().FindTransactions(ctx, specs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, &dto.TransactionResponse{
			Id:           tx.Id,
			FromAdminId:  tx.FromAdminId,
			ToAdminId:    tx.ToAdminId,
			ToUserId:     tx.ToUserId,
			Type:         string(tx.Type),
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Description:  tx.Description,
			CreatedAt:    tx.CreatedAt,
		})
	}
	return out, nil
}
