package service

import (
	"context"
	"testing"
	"time"

	"fx-backoffice-be/internal/config"
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWT = config.JWTConfig{Secret: "test-secret", TTL: time.Hour}

func seedLoginAdmin(store *memStore, email, password string, role entity.AdminRole, status entity.AdminStatus) *entity.Admin {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	admin := &entity.Admin{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	store.admins[admin.Id] = admin
	store.wallets[admin.Id] = &entity.AdminWallet{
		Id:      uuid.New(),
		AdminId: admin.Id,
		Balance: 420,
		Status:  entity.WalletStatusActive,
	}
	return admin
}

func TestLoginSuccess(t *testing.T) {
	store := newMemStore()
	seedLoginAdmin(store, "owner@brand.test", "hunter22", entity.AdminRoleAdmin, entity.AdminStatusActive)

	svc := NewAuthService(newMemFactory(store), testJWT)
	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "owner@brand.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "owner@brand.test", res.Admin.Email)
	require.NotNil(t, res.Admin.WalletBalance)
	assert.Equal(t, 420.0, *res.Admin.WalletBalance)
	assert.NotNil(t, res.Admin.LastLoginAt)
}

func TestLoginSuperAdminHasNoWalletBalance(t *testing.T) {
	store := newMemStore()
	seedLoginAdmin(store, "root@platform.test", "hunter22", entity.AdminRoleSuperAdmin, entity.AdminStatusActive)

	svc := NewAuthService(newMemFactory(store), testJWT)
	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "root@platform.test", Password: "hunter22"})
	require.NoError(t, err)
	assert.Nil(t, res.Admin.WalletBalance)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newMemStore()
	seedLoginAdmin(store, "owner@brand.test", "hunter22", entity.AdminRoleAdmin, entity.AdminStatusActive)

	svc := NewAuthService(newMemFactory(store), testJWT)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@brand.test", Password: "hunter22"})
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "owner@brand.test", Password: "wrong"})
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	store := newMemStore()
	seedLoginAdmin(store, "owner@brand.test", "hunter22", entity.AdminRoleAdmin, entity.AdminStatusSuspended)

	svc := NewAuthService(newMemFactory(store), testJWT)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "owner@brand.test", Password: "hunter22"})
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestInitSuperAdminRunsOnce(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(newMemFactory(store), testJWT)

	profile, err := svc.InitSuperAdmin(context.Background(), &dto.InitSuperAdminRequest{
		Email:     "root@platform.test",
		Password:  "first-password",
		FirstName: "Root",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AdminRoleSuperAdmin), profile.Role)

	// A wallet row exists even though the super balance is never checked.
	assert.Contains(t, store.wallets, profile.Id)

	_, err = svc.InitSuperAdmin(context.Background(), &dto.InitSuperAdminRequest{
		Email:     "second@platform.test",
		Password:  "other-password",
		FirstName: "Second",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	store := newMemStore()
	admin := seedLoginAdmin(store, "owner@brand.test", "old-password", entity.AdminRoleAdmin, entity.AdminStatusActive)

	svc := NewAuthService(newMemFactory(store), testJWT)

	err := svc.ChangePassword(context.Background(), admin.Id, &dto.ChangePasswordRequest{
		CurrentPassword: "guessed",
		NewPassword:     "new-password",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	err = svc.ChangePassword(context.Background(), admin.Id, &dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	stored := store.admins[admin.Id].PasswordHash
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-password")))
}
