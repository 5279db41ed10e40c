package controller

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ILogsController interface {
	RegisterRoutes(r fiber.Router)
}

type logsController struct {
	log  logger.ILogger
	auth *serverutils.AuthMiddleware
}

func NewLogsController(log logger.ILogger, auth *serverutils.AuthMiddleware) ILogsController {
	return &logsController{log: log, auth: auth}
}

func (c *logsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/logs/v1", c.auth.Handle, c.auth.RequireRoles(entity.AdminRoleSuperAdmin))
	h.Get("", c.GetAll)
}

func (c *logsController) GetAll(ctx *fiber.Ctx) error {
	entries, err := c.log.GetLogs(
		ctx.Query("level"),
		ctx.QueryInt("limit", 100),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", entries))
}
