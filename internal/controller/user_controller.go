package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
}

type userController struct {
	service service.IUserService
	auth    *serverutils.AuthMiddleware
}

func NewUserController(service service.IUserService, auth *serverutils.AuthMiddleware) IUserController {
	return &userController{service: service, auth: auth}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/v1", c.auth.Handle, c.auth.RequirePermission(entity.PermManageUsers))
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/dashboard-stats", c.DashboardStats)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Post("/:id/transfer", c.auth.RequireRoles(entity.AdminRoleSuperAdmin), c.Transfer)
	h.Post("/:id/password", c.SetPassword)
	h.Post("/:id/block", c.Block)
	h.Post("/:id/unblock", c.Unblock)
	h.Post("/:id/ban", c.Ban)
	h.Post("/:id/unban", c.Unban)
	h.Post("/:id/login-as", c.LoginAs)
	h.Delete("/:id", c.Delete)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateUser(ctx.Context(), serverutils.CurrentAdmin(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User created", res))
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	query := dto.ListUsersQuery{
		AdminId: ctx.Query("adminId"),
		Search:  ctx.Query("search"),
		Limit:   ctx.QueryInt("limit", 50),
		Offset:  ctx.QueryInt("offset", 0),
	}

	users, total, err := c.service.ListUsers(ctx.Context(), serverutils.CurrentAdmin(ctx), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get users", fiber.Map{
		"users": users,
		"total": total,
	}))
}

func (c *userController) DashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.DashboardStats(ctx.Context(), serverutils.CurrentAdmin(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.service.GetUser(ctx.Context(), serverutils.CurrentAdmin(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.UpdateUser(ctx.Context(), serverutils.CurrentAdmin(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User updated", res))
}

func (c *userController) Transfer(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.TransferUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UserId = id

	if err := c.service.TransferUser(ctx.Context(), serverutils.CurrentAdmin(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User transferred", nil))
}

func (c *userController) SetPassword(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.SetUserPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.UserId = id

	if err := c.service.SetUserPassword(ctx.Context(), serverutils.CurrentAdmin(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password set", nil))
}

func (c *userController) Block(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.BlockUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UserId = id

	if err := c.service.BlockUser(ctx.Context(), serverutils.CurrentAdmin(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User blocked", nil))
}

func (c *userController) Unblock(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	if err := c.service.UnblockUser(ctx.Context(), serverutils.CurrentAdmin(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User unblocked", nil))
}

func (c *userController) Ban(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.BanUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.UserId = id

	if err := c.service.BanUser(ctx.Context(), serverutils.CurrentAdmin(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User banned", nil))
}

func (c *userController) Unban(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	if err := c.service.UnbanUser(ctx.Context(), serverutils.CurrentAdmin(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User unbanned", nil))
}

func (c *userController) LoginAs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.service.LoginAsUser(ctx.Context(), serverutils.CurrentAdmin(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Impersonation token issued", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	if err := c.service.DeleteUser(ctx.Context(), serverutils.CurrentAdmin(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User deleted", nil))
}
