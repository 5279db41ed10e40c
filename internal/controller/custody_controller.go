package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICustodyController interface {
	RegisterRoutes(r fiber.Router)
}

type custodyController struct {
	service service.ICustodyService
	auth    *serverutils.AuthMiddleware
}

func NewCustodyController(service service.ICustodyService, auth *serverutils.AuthMiddleware) ICustodyController {
	return &custodyController{service: service, auth: auth}
}

func (c *custodyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wallet/v1", c.auth.Handle)
	h.Get("/me", c.MyWallet)
	h.Get("/transactions", c.Transactions)

	h.Post("/fund-requests", c.RequestFunds)
	h.Get("/fund-requests", c.FundRequests)
	h.Post("/fund-requests/:id/process", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.ProcessFundRequest)

	h.Post("/fund", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.Fund)
	h.Post("/deduct", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.Deduct)
	h.Get("/:adminId", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.Wallet)

	funds := r.Group("/funds/v1", c.auth.Handle, c.auth.RequirePermission(entity.PermManageFunds))
	funds.Post("/users/:id/add", c.AddUserFunds)
	funds.Post("/users/:id/deduct", c.DeductUserFunds)
	funds.Post("/accounts/:id/add", c.AddAccountFunds)
	funds.Post("/accounts/:id/deduct", c.DeductAccountFunds)
	funds.Post("/accounts/:id/credit/add", c.AddCredit)
	funds.Post("/accounts/:id/credit/remove", c.RemoveCredit)
	funds.Post("/accounts/:id/summary", c.AccountSummary)
}

func (c *custodyController) MyWallet(ctx *fiber.Ctx) error {
	admin := serverutils.CurrentAdmin(ctx)
	res, err := c.service.GetWallet(ctx.Context(), admin, admin.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wallet", res))
}

func (c *custodyController) Wallet(ctx *fiber.Ctx) error {
	adminId, err := uuid.Parse(ctx.Params("adminId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	res, err := c.service.GetWallet(ctx.Context(), serverutils.CurrentAdmin(ctx), adminId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wallet", res))
}

func (c *custodyController) RequestFunds(ctx *fiber.Ctx) error {
	var req dto.CreateFundRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RequestFunds(ctx.Context(), serverutils.CurrentAdmin(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Fund request created", res))
}

func (c *custodyController) FundRequests(ctx *fiber.Ctx) error {
	res, err := c.service.ListFundRequests(ctx.Context(),
		serverutils.CurrentAdmin(ctx),
		ctx.Query("status"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get fund requests", res))
}

func (c *custodyController) ProcessFundRequest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.ProcessFundRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.ProcessFundRequest(ctx.Context(), serverutils.CurrentAdminId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Fund request processed", res))
}

func (c *custodyController) Fund(ctx *fiber.Ctx) error {
	var req dto.FundWalletRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.FundWallet(ctx.Context(), serverutils.CurrentAdminId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Wallet funded", res))
}

func (c *custodyController) Deduct(ctx *fiber.Ctx) error {
	var req dto.DeductWalletRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DeductWallet(ctx.Context(), serverutils.CurrentAdminId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Wallet deducted", res))
}

func (c *custodyController) parseUserFunds(ctx *fiber.Ctx) (*dto.UserFundsRequest, error) {
	userId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UserFundsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	req.UserId = userId
	return &req, nil
}

func (c *custodyController) AddUserFunds(ctx *fiber.Ctx) error {
	req, err := c.parseUserFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.AddUserFunds(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Funds added", nil))
}

func (c *custodyController) DeductUserFunds(ctx *fiber.Ctx) error {
	req, err := c.parseUserFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeductUserFunds(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Funds deducted", nil))
}

func (c *custodyController) parseAccountFunds(ctx *fiber.Ctx) (*dto.TradingAccountFundsRequest, error) {
	accountId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid account id")
	}

	var req dto.TradingAccountFundsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	req.AccountId = accountId
	return &req, nil
}

func (c *custodyController) AddAccountFunds(ctx *fiber.Ctx) error {
	req, err := c.parseAccountFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.AddAccountFunds(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account funded", nil))
}

func (c *custodyController) DeductAccountFunds(ctx *fiber.Ctx) error {
	req, err := c.parseAccountFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeductAccountFunds(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account funds deducted", nil))
}

func (c *custodyController) AddCredit(ctx *fiber.Ctx) error {
	req, err := c.parseAccountFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.AddAccountCredit(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Credit added", nil))
}

func (c *custodyController) RemoveCredit(ctx *fiber.Ctx) error {
	req, err := c.parseAccountFunds(ctx)
	if err != nil {
		return err
	}
	if err := c.service.RemoveAccountCredit(ctx.Context(), serverutils.CurrentAdmin(ctx), req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Credit removed", nil))
}

func (c *custodyController) AccountSummary(ctx *fiber.Ctx) error {
	accountId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid account id")
	}

	var req dto.AccountSummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.AccountId = accountId

	res, err := c.service.AccountSummary(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get account summary", res))
}

func (c *custodyController) Transactions(ctx *fiber.Ctx) error {
	res, err := c.service.ListTransactions(ctx.Context(),
		serverutils.CurrentAdmin(ctx),
		ctx.Query("type"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}
