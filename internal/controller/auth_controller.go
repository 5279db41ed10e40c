package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	InitSuperAdmin(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	auth    *serverutils.AuthMiddleware
}

func NewAuthController(service service.IAuthService, auth *serverutils.AuthMiddleware) IAuthController {
	return &authController{service: service, auth: auth}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/login", c.Login)
	h.Post("/init-super-admin", c.InitSuperAdmin)

	me := h.Group("/me", c.auth.Handle)
	me.Get("", c.Me)
	me.Put("", c.UpdateProfile)
	me.Put("/password", c.ChangePassword)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) InitSuperAdmin(ctx *fiber.Ctx) error {
	var req dto.InitSuperAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.InitSuperAdmin(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Super admin created", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	res, err := c.service.GetProfile(ctx.Context(), serverutils.CurrentAdminId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *authController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), serverutils.CurrentAdminId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ChangePassword(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}
