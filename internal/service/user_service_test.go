package service

import (
	"context"
	"testing"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserSvc(store *memStore) (IUserService, *capturePublisher) {
	pub := &capturePublisher{}
	return NewUserService(newMemFactory(store), pub, testJWT), pub
}

func TestBanUserImpliesBlock(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)

	svc, pub := newUserSvc(store)
	err := svc.BanUser(context.Background(), admin, &dto.BanUserRequest{UserId: user.Id, Reason: "chargeback fraud"})
	require.NoError(t, err)

	stored := store.users[user.Id]
	assert.True(t, stored.IsBanned)
	assert.True(t, stored.IsBlocked)
	assert.Equal(t, "chargeback fraud", stored.BanReason)
	assert.Equal(t, "chargeback fraud", stored.BlockReason)
	assert.Contains(t, pub.types(), "USER_BANNED")
}

func TestBanKeepsExistingBlockReason(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)
	store.users[user.Id].IsBlocked = true
	store.users[user.Id].BlockReason = "pending investigation"

	svc, _ := newUserSvc(store)
	err := svc.BanUser(context.Background(), admin, &dto.BanUserRequest{UserId: user.Id, Reason: "confirmed fraud"})
	require.NoError(t, err)

	stored := store.users[user.Id]
	assert.Equal(t, "confirmed fraud", stored.BanReason)
	assert.Equal(t, "pending investigation", stored.BlockReason)
}

func TestUnbanDoesNotUnblock(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)

	svc, pub := newUserSvc(store)
	require.NoError(t, svc.BanUser(context.Background(), admin, &dto.BanUserRequest{UserId: user.Id, Reason: "fraud"}))
	require.NoError(t, svc.UnbanUser(context.Background(), admin, user.Id))

	stored := store.users[user.Id]
	assert.False(t, stored.IsBanned)
	assert.Empty(t, stored.BanReason)
	// The block survives the unban and must be lifted separately.
	assert.True(t, stored.IsBlocked)
	assert.Contains(t, pub.types(), "USER_UNBANNED")

	require.NoError(t, svc.UnblockUser(context.Background(), admin, user.Id))
	assert.False(t, store.users[user.Id].IsBlocked)
}

func TestBlockScopedToTenant(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	other := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &other.Id, 0)

	svc, _ := newUserSvc(store)
	err := svc.BlockUser(context.Background(), admin, &dto.BlockUserRequest{UserId: user.Id, Reason: "spam"})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	existing := seedUser(store, &admin.Id, 0)

	svc, _ := newUserSvc(store)
	_, err := svc.CreateUser(context.Background(), admin, &dto.CreateUserRequest{
		Email:     existing.Email,
		Password:  "secret123",
		FirstName: "Dup",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCreateUserProvisionsWalletAndAccount(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)

	svc, pub := newUserSvc(store)
	res, err := svc.CreateUser(context.Background(), admin, &dto.CreateUserRequest{
		Email:     "trader@brand.test",
		Password:  "secret123",
		FirstName: "Tina",
	})
	require.NoError(t, err)
	require.NotNil(t, store.users[res.Id].AssignedAdmin)
	assert.Equal(t, admin.Id, *store.users[res.Id].AssignedAdmin)

	assert.Contains(t, store.userWallets, res.Id)
	require.Len(t, store.accounts, 1)
	for _, account := range store.accounts {
		assert.Equal(t, res.Id, account.UserId)
		assert.Equal(t, 100, account.Leverage)
		assert.Equal(t, entity.TradingAccountActive, account.Status)
	}
	assert.Contains(t, pub.types(), "USER_CREATED")
}

func TestTransferUserForfeitsBalanceWhenNotMoved(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	from := seedAdmin(store, entity.AdminRoleAdmin, 0)
	to := seedAdmin(store, entity.AdminRoleAdmin, 0)
	to.UrlSlug = "new-brand"
	user := seedUser(store, &from.Id, 150)

	svc, _ := newUserSvc(store)
	err := svc.TransferUser(context.Background(), super, &dto.TransferUserRequest{
		UserId:        user.Id,
		ToAdminId:     &to.Id,
		TransferFunds: false,
	})
	require.NoError(t, err)

	stored := store.users[user.Id]
	require.NotNil(t, stored.AssignedAdmin)
	assert.Equal(t, to.Id, *stored.AssignedAdmin)
	assert.Equal(t, "new-brand", stored.AdminUrlSlug)

	assert.Equal(t, 0.0, store.userWallets[user.Id].Balance)
	require.Len(t, store.transactions, 1)
	assert.Equal(t, entity.TxAdjustment, store.transactions[0].Type)
	assert.Equal(t, -150.0, store.transactions[0].Amount)

	require.Len(t, store.actionLogs, 1)
	assert.Equal(t, "USER_TRANSFER", store.actionLogs[0].Action)
}

func TestTransferUserKeepsBalanceWhenMoved(t *testing.T) {
	store := newMemStore()
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	from := seedAdmin(store, entity.AdminRoleAdmin, 0)
	to := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &from.Id, 150)

	svc, _ := newUserSvc(store)
	err := svc.TransferUser(context.Background(), super, &dto.TransferUserRequest{
		UserId:        user.Id,
		ToAdminId:     &to.Id,
		TransferFunds: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, store.userWallets[user.Id].Balance)
	assert.Empty(t, store.transactions)
}
