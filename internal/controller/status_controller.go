package controller

import (
	"signal-for-good-be/internal/pkg/serverutils"
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatusController interface {
	RegisterRoutes(r fiber.Router)
	GetStatus(ctx *fiber.Ctx) error
}

type statusController struct {
	service service.IStatusService
}

func NewStatusController(service service.IStatusService) IStatusController {
	return &statusController{service: service}
}

func (c *statusController) RegisterRoutes(r fiber.Router) {
	r.Get("/status", c.GetStatus)
}

func (c *statusController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.GetStatus(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System status", res))
}
