package controller

import (
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/service"
	ws "fx-backoffice-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
}

type notificationController struct {
	service service.INotificationService
	hub     *ws.Hub
	auth    *serverutils.AuthMiddleware
}

func NewNotificationController(service service.INotificationService, hub *ws.Hub, auth *serverutils.AuthMiddleware) INotificationController {
	return &notificationController{service: service, hub: hub, auth: auth}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notifications/v1", c.auth.Handle)
	h.Get("", c.GetAll)
	h.Post("/:id/read", c.MarkRead)
	h.Post("/read-all", c.MarkAllRead)

	// Websocket upgrade carries the admin identity resolved by the auth
	// middleware into the connection handler.
	wsGroup := r.Group("/ws/v1", c.auth.Handle)
	wsGroup.Use("/", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			ctx.Locals("ws_recipient", serverutils.CurrentAdminId(ctx))
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	wsGroup.Get("/", websocket.New(func(conn *websocket.Conn) {
		recipientId, _ := conn.Locals("ws_recipient").(uuid.UUID)
		ws.ServeWs(c.hub, conn, recipientId)
	}))
}

func (c *notificationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(),
		serverutils.CurrentAdminId(ctx),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notifications", res))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := c.service.MarkRead(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked read", nil))
}

func (c *notificationController) MarkAllRead(ctx *fiber.Ctx) error {
	if err := c.service.MarkAllRead(ctx.Context(), serverutils.CurrentAdminId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("All notifications marked read", nil))
}
