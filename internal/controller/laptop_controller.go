package controller

import (
	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/pkg/serverutils"
	"laptop-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILaptopController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Classify(ctx *fiber.Ctx) error
}

type laptopController struct {
	laptopService service.ILaptopService
}

func NewLaptopController(laptopService service.ILaptopService) ILaptopController {
	return &laptopController{
		laptopService: laptopService,
	}
}

func (c *laptopController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/laptop/v1")
	h.Get("", c.List)
	// Catalog writes are operator-only.
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Post(":id/classify", serverutils.JwtMiddleware, c.Classify)
}

func (c *laptopController) List(ctx *fiber.Ctx) error {
	brand := ctx.Query("brand", "")

	res, err := c.laptopService.List(ctx.Context(), brand)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list laptops", res))
}

func (c *laptopController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLaptopRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.laptopService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create laptop", res))
}

func (c *laptopController) Classify(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid laptop id")
	}

	if err := c.laptopService.Classify(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Classification enqueued", nil))
}
