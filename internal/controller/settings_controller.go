package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
}

type settingsController struct {
	service service.ISettingsService
	auth    *serverutils.AuthMiddleware
}

func NewSettingsController(service service.ISettingsService, auth *serverutils.AuthMiddleware) ISettingsController {
	return &settingsController{service: service, auth: auth}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	// Slug and user resolution endpoints serve client apps pre-login.
	public := r.Group("/public/v1")
	public.Get("/settings/slug/:slug", c.BySlug)
	public.Get("/settings/user/:userId", c.ByUser)

	h := r.Group("/settings/v1", c.auth.Handle)
	h.Get("/me", c.Mine)
	h.Get("/admin/:id", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.ByAdmin)

	sections := h.Group("", c.auth.RequirePermission(entity.PermManageSettings))
	sections.Put("/bank", c.UpdateBank)
	sections.Put("/forex-charges", c.UpdateForexCharges)
	sections.Put("/theme", c.UpdateTheme)
	sections.Put("/email-templates", c.UpdateEmailTemplates)
	sections.Put("/bonuses", c.UpdateBonuses)
	sections.Put("/account-types", c.UpdateAccountTypes)
	sections.Put("/ib", c.UpdateIB)
	sections.Put("/copy-trade", c.UpdateCopyTrade)
	sections.Put("/prop-firm", c.UpdatePropFirm)
}

func (c *settingsController) Mine(ctx *fiber.Ctx) error {
	res, err := c.service.GetEffectiveSettings(ctx.Context(), serverutils.CurrentAdminId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) ByAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	res, err := c.service.GetEffectiveSettings(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) BySlug(ctx *fiber.Ctx) error {
	res, err := c.service.GetSettingsBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) ByUser(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.service.GetSettingsForUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) UpdateBank(ctx *fiber.Ctx) error {
	var req dto.UpdateBankSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdateBankSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Bank settings updated", nil))
}

func (c *settingsController) UpdateForexCharges(ctx *fiber.Ctx) error {
	var req dto.UpdateForexChargesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.service.UpdateForexCharges(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Forex charges updated", nil))
}

func (c *settingsController) UpdateTheme(ctx *fiber.Ctx) error {
	var req dto.UpdateThemeSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdateThemeSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Theme settings updated", nil))
}

func (c *settingsController) UpdateEmailTemplates(ctx *fiber.Ctx) error {
	var req dto.UpdateEmailTemplatesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdateEmailTemplates(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Email templates updated", nil))
}

func (c *settingsController) UpdateBonuses(ctx *fiber.Ctx) error {
	var req dto.UpdateBonusSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.service.UpdateBonusSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Bonus settings updated", nil))
}

func (c *settingsController) UpdateAccountTypes(ctx *fiber.Ctx) error {
	var req dto.UpdateAccountTypesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.service.UpdateAccountTypes(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account types updated", nil))
}

func (c *settingsController) UpdateIB(ctx *fiber.Ctx) error {
	var req dto.UpdateIBSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdateIBSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("IB settings updated", nil))
}

func (c *settingsController) UpdateCopyTrade(ctx *fiber.Ctx) error {
	var req dto.UpdateCopyTradeSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdateCopyTradeSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Copy trade settings updated", nil))
}

func (c *settingsController) UpdatePropFirm(ctx *fiber.Ctx) error {
	var req dto.UpdatePropFirmSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := c.service.UpdatePropFirmSettings(ctx.Context(), serverutils.CurrentAdminId(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Prop firm settings updated", nil))
}
