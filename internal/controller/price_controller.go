package controller

import (
	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/pkg/serverutils"
	"laptop-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPriceController interface {
	RegisterRoutes(r fiber.Router)
	Lookup(ctx *fiber.Ctx) error
}

type priceController struct {
	priceService service.IPriceService
}

func NewPriceController(priceService service.IPriceService) IPriceController {
	return &priceController{
		priceService: priceService,
	}
}

func (c *priceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/price/v1")
	h.Post("", c.Lookup)
}

func (c *priceController) Lookup(ctx *fiber.Ctx) error {
	var req dto.PriceLookupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.priceService.Lookup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success lookup prices", res))
}
