package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBannerController interface {
	RegisterRoutes(r fiber.Router)
}

type bannerController struct {
	service service.IBannerService
	auth    *serverutils.AuthMiddleware
}

func NewBannerController(service service.IBannerService, auth *serverutils.AuthMiddleware) IBannerController {
	return &bannerController{service: service, auth: auth}
}

func (c *bannerController) RegisterRoutes(r fiber.Router) {
	public := r.Group("/public/v1")
	public.Get("/banners", c.GetActive)

	h := r.Group("/banners/v1", c.auth.Handle, c.auth.RequireRoles(entity.AdminRoleSuperAdmin))
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *bannerController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.service.ListActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get banners", res))
}

func (c *bannerController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get banners", res))
}

func (c *bannerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBannerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.CurrentAdminId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Banner created", res))
}

func (c *bannerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid banner id")
	}

	var req dto.UpdateBannerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Banner updated", res))
}

func (c *bannerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid banner id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Banner deleted", nil))
}
