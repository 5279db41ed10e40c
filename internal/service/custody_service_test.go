package service

import (
	"context"
	"sync"
	"testing"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAdmin(store *memStore, role entity.AdminRole, balance float64) *entity.Admin {
	admin := &entity.Admin{
		Id:     uuid.New(),
		Email:  uuid.NewString() + "@test.local",
		Role:   role,
		Status: entity.AdminStatusActive,
	}
	store.admins[admin.Id] = admin
	store.wallets[admin.Id] = &entity.AdminWallet{
		Id:      uuid.New(),
		AdminId: admin.Id,
		Balance: balance,
		Status:  entity.WalletStatusActive,
	}
	return admin
}

func seedUser(store *memStore, assignedTo *uuid.UUID, balance float64) *entity.User {
	user := &entity.User{
		Id:            uuid.New(),
		Email:         uuid.NewString() + "@test.local",
		AssignedAdmin: assignedTo,
	}
	store.users[user.Id] = user
	store.userWallets[user.Id] = &entity.UserWallet{
		Id:      uuid.New(),
		UserId:  user.Id,
		Balance: balance,
	}
	return user
}

func newCustody(store *memStore) (ICustodyService, *capturePublisher) {
	pub := &capturePublisher{}
	return NewCustodyService(newMemFactory(store), pub, nil), pub
}

func TestProcessFundRequestApproveCreditsWallet(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 100)

	request := &entity.AdminFundRequest{
		Id:      uuid.New(),
		AdminId: admin.Id,
		Amount:  250,
		Status:  entity.FundRequestPending,
	}
	store.fundRequests[request.Id] = request

	svc, pub := newCustody(store)
	res, err := svc.ProcessFundRequest(context.Background(), super.Id, &dto.ProcessFundRequestRequest{
		Id:      request.Id,
		Approve: true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.FundRequestApproved), res.Status)

	wallet := store.wallets[admin.Id]
	assert.Equal(t, 350.0, wallet.Balance)
	assert.Equal(t, 250.0, wallet.TotalReceived)

	require.Len(t, store.transactions, 1)
	ledger := store.transactions[0]
	assert.Equal(t, entity.TxSuperToAdmin, ledger.Type)
	assert.Equal(t, 250.0, ledger.Amount)
	assert.Equal(t, 350.0, ledger.BalanceAfter)

	assert.Contains(t, pub.types(), "FUND_REQUEST_APPROVED")
}

func TestProcessFundRequestTwiceConflicts(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)

	request := &entity.AdminFundRequest{
		Id:      uuid.New(),
		AdminId: admin.Id,
		Amount:  50,
		Status:  entity.FundRequestPending,
	}
	store.fundRequests[request.Id] = request

	svc, _ := newCustody(store)
	_, err := svc.ProcessFundRequest(context.Background(), super.Id, &dto.ProcessFundRequestRequest{Id: request.Id, Approve: true})
	require.NoError(t, err)

	_, err = svc.ProcessFundRequest(context.Background(), super.Id, &dto.ProcessFundRequestRequest{Id: request.Id, Approve: true})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The wallet was credited exactly once.
	assert.Equal(t, 50.0, store.wallets[admin.Id].Balance)
	assert.Len(t, store.transactions, 1)
}

func TestProcessFundRequestRejectLeavesWalletUntouched(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 75)

	request := &entity.AdminFundRequest{
		Id:      uuid.New(),
		AdminId: admin.Id,
		Amount:  500,
		Status:  entity.FundRequestPending,
	}
	store.fundRequests[request.Id] = request

	svc, pub := newCustody(store)
	res, err := svc.ProcessFundRequest(context.Background(), super.Id, &dto.ProcessFundRequestRequest{
		Id:      request.Id,
		Approve: false,
		Remarks: "unverified source",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.FundRequestRejected), res.Status)
	assert.Equal(t, "unverified source", res.Remarks)

	assert.Equal(t, 75.0, store.wallets[admin.Id].Balance)
	assert.Empty(t, store.transactions)
	assert.Contains(t, pub.types(), "FUND_REQUEST_REJECTED")
}

func TestDeductWalletRejectsOverdraft(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 100)

	svc, _ := newCustody(store)
	_, err := svc.DeductWallet(context.Background(), super.Id, &dto.DeductWalletRequest{
		AdminId: admin.Id,
		Amount:  100.01,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))
	assert.Equal(t, 100.0, store.wallets[admin.Id].Balance)
	assert.Empty(t, store.transactions)
}

func TestDeductWalletExactBalance(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 100)

	svc, _ := newCustody(store)
	res, err := svc.DeductWallet(context.Background(), super.Id, &dto.DeductWalletRequest{
		AdminId: admin.Id,
		Amount:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Balance)

	require.Len(t, store.transactions, 1)
	assert.Equal(t, entity.TxAdjustment, store.transactions[0].Type)
	assert.Equal(t, -100.0, store.transactions[0].Amount)
}

func TestAddUserFundsDebitsAdminWallet(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 500)
	user := seedUser(store, &admin.Id, 20)

	svc, pub := newCustody(store)
	err := svc.AddUserFunds(context.Background(), admin, &dto.UserFundsRequest{
		UserId: user.Id,
		Amount: 300,
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, store.wallets[admin.Id].Balance)
	assert.Equal(t, 300.0, store.wallets[admin.Id].TotalGivenToUsers)
	assert.Equal(t, 320.0, store.userWallets[user.Id].Balance)

	require.Len(t, store.transactions, 1)
	assert.Equal(t, entity.TxAdminToUser, store.transactions[0].Type)
	assert.Equal(t, 320.0, store.transactions[0].BalanceAfter)
	assert.Contains(t, pub.types(), "USER_FUNDS_ADDED")
}

func TestAddUserFundsSuperAdminSkipsDebit(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	user := seedUser(store, nil, 0)

	svc, _ := newCustody(store)
	err := svc.AddUserFunds(context.Background(), super, &dto.UserFundsRequest{
		UserId: user.Id,
		Amount: 10000,
	})
	require.NoError(t, err)

	// The super wallet never goes negative, it tracks distribution only.
	assert.Equal(t, 0.0, store.wallets[super.Id].Balance)
	assert.Equal(t, 10000.0, store.wallets[super.Id].TotalGivenToUsers)
	assert.Equal(t, 10000.0, store.userWallets[user.Id].Balance)
}

func TestAddUserFundsInsufficientBalance(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 50)
	user := seedUser(store, &admin.Id, 0)

	svc, _ := newCustody(store)
	err := svc.AddUserFunds(context.Background(), admin, &dto.UserFundsRequest{UserId: user.Id, Amount: 51})
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))
	assert.Equal(t, 0.0, store.userWallets[user.Id].Balance)
}

func TestAddUserFundsFrozenWallet(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 500)
	store.wallets[admin.Id].Status = entity.WalletStatusFrozen
	user := seedUser(store, &admin.Id, 0)

	svc, _ := newCustody(store)
	err := svc.AddUserFunds(context.Background(), admin, &dto.UserFundsRequest{UserId: user.Id, Amount: 10})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAddUserFundsForeignUserForbidden(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 500)
	other := seedAdmin(store, entity.AdminRoleAdmin, 500)
	user := seedUser(store, &other.Id, 0)

	svc, _ := newCustody(store)
	err := svc.AddUserFunds(context.Background(), admin, &dto.UserFundsRequest{UserId: user.Id, Amount: 10})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestDeductUserFundsRejectsOverdraft(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 30)

	svc, _ := newCustody(store)
	err := svc.DeductUserFunds(context.Background(), admin, &dto.UserFundsRequest{UserId: user.Id, Amount: 31})
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))

	err = svc.DeductUserFunds(context.Background(), admin, &dto.UserFundsRequest{UserId: user.Id, Amount: 30, Description: "chargeback"})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, store.userWallets[user.Id].Balance)

	require.Len(t, store.transactions, 1)
	assert.Equal(t, -30.0, store.transactions[0].Amount)
	assert.NotNil(t, store.transactions[0].ToUserId)
}

func TestRemoveAccountCreditBounded(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)
	account := &entity.TradingAccount{
		Id:     uuid.New(),
		UserId: user.Id,
		Credit: 40,
	}
	store.accounts[account.Id] = account

	svc, _ := newCustody(store)
	err := svc.RemoveAccountCredit(context.Background(), admin, &dto.TradingAccountFundsRequest{
		AccountId: account.Id,
		Amount:    41,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))
	assert.Equal(t, 40.0, store.accounts[account.Id].Credit)

	err = svc.RemoveAccountCredit(context.Background(), admin, &dto.TradingAccountFundsRequest{
		AccountId: account.Id,
		Amount:    40,
		Reason:    "bonus expired",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, store.accounts[account.Id].Credit)

	require.Len(t, store.actionLogs, 1)
	assert.Equal(t, "ACCOUNT_CREDIT_REMOVE", store.actionLogs[0].Action)
	assert.Equal(t, 40.0, store.actionLogs[0].PreviousValue["credit"])
}

func TestGetWalletScopedToOwner(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 10)
	other := seedAdmin(store, entity.AdminRoleAdmin, 20)
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)

	svc, _ := newCustody(store)

	_, err := svc.GetWallet(context.Background(), admin, other.Id)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	res, err := svc.GetWallet(context.Background(), super, other.Id)
	require.NoError(t, err)
	assert.Equal(t, 20.0, res.Balance)
	assert.False(t, res.Unlimited)

	res, err = svc.GetWallet(context.Background(), super, super.Id)
	require.NoError(t, err)
	assert.True(t, res.Unlimited)
}

func TestListTransactionsScopedForTenant(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	other := seedAdmin(store, entity.AdminRoleAdmin, 0)
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)

	store.transactions = []*entity.AdminWalletTransaction{
		{Id: uuid.New(), FromAdminId: &super.Id, ToAdminId: &admin.Id, Type: entity.TxSuperToAdmin, Amount: 100},
		{Id: uuid.New(), FromAdminId: &super.Id, ToAdminId: &other.Id, Type: entity.TxSuperToAdmin, Amount: 200},
	}

	svc, _ := newCustody(store)
	out, err := svc.ListTransactions(context.Background(), admin, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].Amount)

	out, err = svc.ListTransactions(context.Background(), super, "", 50, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestConcurrentDeductsNeverOverdraw(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 500)

	svc, _ := newCustody(store)

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.DeductWallet(context.Background(), super.Id, &dto.DeductWalletRequest{
				AdminId:     admin.Id,
				Amount:      50,
				Description: "load test",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, refused int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))
		refused++
	}

	// Only the ten deducts the balance covered may land.
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, workers-10, refused)
	assert.Equal(t, 0.0, store.wallets[admin.Id].Balance)

	require.Len(t, store.transactions, succeeded)
	var total float64
	for _, tx := range store.transactions {
		assert.Equal(t, entity.TxAdjustment, tx.Type)
		total += tx.Amount
	}
	assert.Equal(t, -500.0, total)
}

func TestRequestFundsRejectedForSuperAdmin(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)

	svc, pub := newCustody(store)

	_, err := svc.RequestFunds(context.Background(), super, &dto.CreateFundRequestRequest{Amount: 100})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.Empty(t, store.fundRequests)
	assert.Empty(t, pub.types())

	res, err := svc.RequestFunds(context.Background(), admin, &dto.CreateFundRequestRequest{Amount: 100, Description: "monthly float"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.FundRequestPending), res.Status)
	assert.Equal(t, admin.Id, res.AdminId)
	assert.Contains(t, pub.types(), "FUND_REQUEST_CREATED")
}

func TestConcurrentUserDeductsTwoActors(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 500)

	svc, _ := newCustody(store)

	// The super admin and the assigned admin hammer the same user wallet.
	// The wallet lock is keyed by the user, so their deducts must serialize
	// even though the actors differ.
	const perActor = 10
	errs := make(chan error, 2*perActor)
	var wg sync.WaitGroup
	for _, actor := range []*entity.Admin{super, admin} {
		for i := 0; i < perActor; i++ {
			wg.Add(1)
			go func(actor *entity.Admin) {
				defer wg.Done()
				errs <- svc.DeductUserFunds(context.Background(), actor, &dto.UserFundsRequest{
					UserId: user.Id,
					Amount: 50,
				})
			}(actor)
		}
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, apperr.IsKind(err, apperr.KindInsufficientFunds))
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 0.0, store.userWallets[user.Id].Balance)

	require.Len(t, store.transactions, succeeded)
	var total float64
	for _, tx := range store.transactions {
		assert.Equal(t, entity.TxAdjustment, tx.Type)
		total += tx.Amount
	}
	assert.Equal(t, -500.0, total)
}
