package controller

import (
	"errors"

	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/pkg/serverutils"
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Login(ctx *fiber.Ctx) error
	CreateAdmin(ctx *fiber.Ctx) error
	GetMetrics(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/admin")
	h.Post("/login", c.Login)
	h.Post("/users", authMiddleware, c.CreateAdmin)
	h.Get("/metrics", authMiddleware, c.GetMetrics)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAdmin(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) GetMetrics(ctx *fiber.Ctx) error {
	res, err := c.service.GetMetrics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Metrics", res))
}
