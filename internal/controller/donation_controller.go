package controller

import (
	"errors"

	"signal-for-good-be/internal/dto"
	"signal-for-good-be/internal/pkg/serverutils"
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDonationController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type donationController struct {
	service service.IDonationService
}

func NewDonationController(service service.IDonationService) IDonationController {
	return &donationController{service: service}
}

func (c *donationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/donations")
	h.Post("/checkout", c.Checkout)
	h.Post("/midtrans/notification", c.Webhook)
}

func (c *donationController) Checkout(ctx *fiber.Ctx) error {
	var req dto.DonationCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateCheckout(ctx.Context(), &req, ctx.IP(), ctx.Get(fiber.HeaderUserAgent))
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *donationController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.SendStatus(fiber.StatusBadRequest)
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) || errors.Is(err, service.ErrUnknownOrder) {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}
		// 500 so the provider retries the delivery
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}
	return ctx.SendStatus(fiber.StatusOK)
}
