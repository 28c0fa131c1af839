package controller

import (
	"signal-for-good-be/internal/pkg/serverutils"
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOpsController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	RunCycle(ctx *fiber.Ctx) error
	Seed(ctx *fiber.Ctx) error
}

type opsController struct {
	cycleService service.ICycleService
	seedService  service.ISeedService
}

func NewOpsController(cycleService service.ICycleService, seedService service.ISeedService) IOpsController {
	return &opsController{cycleService: cycleService, seedService: seedService}
}

func (c *opsController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/ops", authMiddleware)
	h.Post("/run-cycle", c.RunCycle)
	h.Post("/seed", c.Seed)
}

func (c *opsController) RunCycle(ctx *fiber.Ctx) error {
	res, err := c.cycleService.RunCycle(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Cycle executed", res))
}

func (c *opsController) Seed(ctx *fiber.Ctx) error {
	res, err := c.seedService.Seed(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Seed executed", res))
}
