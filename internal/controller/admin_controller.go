package controller

import (
	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
	auth    *serverutils.AuthMiddleware
}

func NewAdminController(service service.IAdminService, auth *serverutils.AuthMiddleware) IAdminController {
	return &adminController{service: service, auth: auth}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	// Brand lookup is public, client apps resolve tenant branding by slug
	// before any login.
	public := r.Group("/public/v1")
	public.Get("/brands/:slug", c.GetBrand)

	h := r.Group("/admins/v1", c.auth.Handle, c.auth.RequireRoles(entity.AdminRoleSuperAdmin))
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/slug-availability/:slug", c.CheckSlug)
	h.Get("/action-logs", c.ActionLogs)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Put("/:id/permissions", c.UpdatePermissions)
	h.Post("/:id/suspend", c.Suspend)
	h.Post("/:id/activate", c.Activate)
	h.Post("/:id/reset-password", c.ResetPassword)
	h.Delete("/:id", c.Delete)

	e := r.Group("/employees/v1", c.auth.Handle, c.auth.RequireRoles(entity.AdminRoleSuperAdmin))
	e.Post("", c.CreateEmployee)
	e.Get("", c.GetEmployees)
	e.Put("/:id", c.UpdateEmployee)
	e.Delete("/:id", c.DeleteEmployee)
}

func (c *adminController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAdmin(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.ListAdmins(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get admins", res))
}

func (c *adminController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	res, err := c.service.GetAdmin(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get admin", res))
}

func (c *adminController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	var req dto.UpdateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.UpdateAdmin(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin updated", res))
}

func (c *adminController) UpdatePermissions(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	var req dto.UpdatePermissionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.UpdatePermissions(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Permissions updated", res))
}

func (c *adminController) Suspend(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	if err := c.service.SuspendAdmin(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin suspended", nil))
}

func (c *adminController) Activate(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	if err := c.service.ActivateAdmin(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin activated", nil))
}

func (c *adminController) ResetPassword(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id = id

	if err := c.service.ResetAdminPassword(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset", nil))
}

func (c *adminController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid admin id")
	}

	if err := c.service.DeleteAdmin(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin deleted", nil))
}

func (c *adminController) CheckSlug(ctx *fiber.Ctx) error {
	res, err := c.service.CheckSlugAvailability(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check slug", res))
}

func (c *adminController) GetBrand(ctx *fiber.Ctx) error {
	res, err := c.service.GetBrandBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get brand", res))
}

func (c *adminController) ActionLogs(ctx *fiber.Ctx) error {
	res, err := c.service.ListActionLogs(ctx.Context(), ctx.QueryInt("limit", 50), ctx.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get action logs", res))
}

func (c *adminController) CreateEmployee(ctx *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateEmployee(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Employee created", res))
}

func (c *adminController) GetEmployees(ctx *fiber.Ctx) error {
	res, err := c.service.ListEmployees(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get employees", res))
}

func (c *adminController) UpdateEmployee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.UpdateEmployee(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Employee updated", res))
}

func (c *adminController) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}

	if err := c.service.DeleteEmployee(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Employee deleted", nil))
}
