package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IKYCController interface {
	RegisterRoutes(r fiber.Router)
}

type kycController struct {
	service service.IKYCService
	auth    *serverutils.AuthMiddleware
}

func NewKYCController(service service.IKYCService, auth *serverutils.AuthMiddleware) IKYCController {
	return &kycController{service: service, auth: auth}
}

func (c *kycController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/kyc/v1", c.auth.Handle, c.auth.RequirePermission(entity.PermManageKYC))
	h.Get("", c.GetAll)
	h.Get("/stats", c.Stats)
	h.Post("/users/:userId/submit", c.Submit)
	h.Get("/users/:userId/status", c.Status)
	h.Post("/:id/approve", c.Approve)
	h.Post("/:id/reject", c.Reject)
}

func (c *kycController) Submit(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.SubmitKYCRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.UserId = userId

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("KYC submitted", res))
}

func (c *kycController) Status(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.service.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get KYC status", res))
}

func (c *kycController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(),
		serverutils.CurrentAdmin(ctx),
		ctx.Query("status"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get KYC documents", res))
}

func (c *kycController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context(), serverutils.CurrentAdmin(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get KYC stats", res))
}

func (c *kycController) Approve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	res, err := c.service.Approve(ctx.Context(), serverutils.CurrentAdmin(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("KYC approved", res))
}

func (c *kycController) Reject(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	var req dto.RejectKYCRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Reject(ctx.Context(), serverutils.CurrentAdmin(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("KYC rejected", res))
}
