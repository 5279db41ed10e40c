package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFactory serves a single admin row. A nil admin simulates a token
// whose account was deleted after issuance.
type stubFactory struct {
	admin *entity.Admin
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &stubUnitOfWork{admin: f.admin}
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	admin *entity.Admin
}

func (u *stubUnitOfWork) AdminRepository() contract.AdminRepository {
	return &stubAdminRepo{admin: u.admin}
}

type stubAdminRepo struct {
	contract.AdminRepository
	admin *entity.Admin
}

func (r *stubAdminRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	if r.admin == nil {
		return nil, nil
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok && s.ID != r.admin.Id {
			return nil, nil
		}
	}
	return r.admin, nil
}

func newTestApp(admin *entity.Admin, extra ...fiber.Handler) *fiber.App {
	m := NewAuthMiddleware("test-secret", &stubFactory{admin: admin})
	app := fiber.New()

	handlers := []fiber.Handler{m.Handle}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(ctx *fiber.Ctx) error {
		return ctx.SendString(CurrentAdmin(ctx).Email)
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newTestApp(nil)

	res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestAuthMiddlewareResolvesAdmin(t *testing.T) {
	admin := &entity.Admin{
		Id:    uuid.New(),
		Email: "owner@brand.test",
		Role:  entity.AdminRoleAdmin,
	}
	app := newTestApp(admin)

	token, err := IssueToken("test-secret", time.Hour, admin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestAuthMiddlewareRejectsDeletedAdmin(t *testing.T) {
	admin := &entity.Admin{Id: uuid.New(), Email: "gone@brand.test", Role: entity.AdminRoleAdmin}
	app := newTestApp(nil) // token is valid, the row is gone

	token, err := IssueToken("test-secret", time.Hour, admin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestRequireRolesBlocksTenantAdmin(t *testing.T) {
	admin := &entity.Admin{Id: uuid.New(), Email: "owner@brand.test", Role: entity.AdminRoleAdmin}
	m := NewAuthMiddleware("test-secret", &stubFactory{admin: admin})
	app := newTestApp(admin, m.RequireRoles(entity.AdminRoleSuperAdmin))

	token, err := IssueToken("test-secret", time.Hour, admin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}

func TestRequirePermission(t *testing.T) {
	admin := &entity.Admin{
		Id:          uuid.New(),
		Email:       "owner@brand.test",
		Role:        entity.AdminRoleAdmin,
		Permissions: map[string]bool{entity.PermManageUsers: true},
	}
	m := NewAuthMiddleware("test-secret", &stubFactory{admin: admin})
	token, err := IssueToken("test-secret", time.Hour, admin)
	require.NoError(t, err)

	granted := newTestApp(admin, m.RequirePermission(entity.PermManageUsers))
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := granted.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	denied := newTestApp(admin, m.RequirePermission(entity.PermManageFunds))
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = denied.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
}
