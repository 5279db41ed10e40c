package serverutils

import (
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalAdminId    = "admin_id"
	LocalAdminRole  = "admin_role"
	LocalAdminEmail = "admin_email"
	LocalAdmin      = "admin"
)

// AuthMiddleware verifies bearer tokens and resolves the admin row on every
// request. Tokens for deleted admins are rejected even before expiry.
type AuthMiddleware struct {
	secret  string
	factory unitofwork.RepositoryFactory
}

func NewAuthMiddleware(secret string, factory unitofwork.RepositoryFactory) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, factory: factory}
}

func IssueToken(secret string, ttl time.Duration, admin *entity.Admin) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"role":     string(admin.Role),
		"email":    admin.Email,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (m *AuthMiddleware) Handle(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
	}

	idStr, _ := claims["admin_id"].(string)
	adminId, err := uuid.Parse(idStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
	}

	uow := m.factory.NewUnitOfWork(ctx.UserContext())
	admin, err := uow.AdminRepository().FindOne(ctx.UserContext(), specification.ByID{ID: adminId})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Something went wrong"))
	}
	if admin == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Admin not found"))
	}

	ctx.Locals(LocalAdminId, admin.Id)
	ctx.Locals(LocalAdminRole, admin.Role)
	ctx.Locals(LocalAdminEmail, admin.Email)
	ctx.Locals(LocalAdmin, admin)
	return ctx.Next()
}

// RequireRoles gates a route group to the listed roles.
func (m *AuthMiddleware) RequireRoles(roles ...entity.AdminRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals(LocalAdminRole).(entity.AdminRole)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied"))
	}
}

// RequirePermission checks a capability key. Super admins pass implicitly.
func (m *AuthMiddleware) RequirePermission(key string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		admin, ok := ctx.Locals(LocalAdmin).(*entity.Admin)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}
		if !admin.HasPermission(key) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied"))
		}
		return ctx.Next()
	}
}

// CurrentAdmin returns the authenticated admin attached by Handle.
func CurrentAdmin(ctx *fiber.Ctx) *entity.Admin {
	admin, _ := ctx.Locals(LocalAdmin).(*entity.Admin)
	return admin
}

func CurrentAdminId(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(LocalAdminId).(uuid.UUID)
	return id
}
