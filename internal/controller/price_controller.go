package controller

import (
	"strings"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/pkg/serverutils"
	"fx-backoffice-be/internal/pricefeed"

	"github.com/gofiber/fiber/v2"
)

type IPriceController interface {
	RegisterRoutes(r fiber.Router)
}

type priceController struct {
	relay *pricefeed.Relay
}

func NewPriceController(relay *pricefeed.Relay) IPriceController {
	return &priceController{relay: relay}
}

// Price endpoints are public, client platforms poll them before login.
func (c *priceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prices/v1")
	h.Get("", c.All)
	h.Get("/instruments", c.Instruments)
	h.Post("/batch", c.Batch)
	h.Get("/:symbol", c.Single)
}

func (c *priceController) All(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get prices", c.relay.AllPrices()))
}

func (c *priceController) Instruments(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get instruments", c.relay.Instruments(ctx.Context())))
}

func (c *priceController) Single(ctx *fiber.Ctx) error {
	symbol := strings.ToUpper(ctx.Params("symbol"))

	quote, err := c.relay.GetPrice(ctx.Context(), symbol)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get price", quote))
}

func (c *priceController) Batch(ctx *fiber.Ctx) error {
	var req dto.BatchPriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	for i, symbol := range req.Symbols {
		req.Symbols[i] = strings.ToUpper(symbol)
	}

	quotes, err := c.relay.GetBatch(ctx.Context(), req.Symbols)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get prices", quotes))
}
