package controller

import (
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISitemapController interface {
	RegisterRoutes(app *fiber.App)
	GetSitemap(ctx *fiber.Ctx) error
}

type sitemapController struct {
	service service.ISitemapService
}

func NewSitemapController(service service.ISitemapService) ISitemapController {
	return &sitemapController{service: service}
}

// RegisterRoutes mounts at the app root so crawlers find /sitemap.xml.
func (c *sitemapController) RegisterRoutes(app *fiber.App) {
	app.Get("/sitemap.xml", c.GetSitemap)
}

func (c *sitemapController) GetSitemap(ctx *fiber.Ctx) error {
	body, err := c.service.GetSitemap(ctx.Context())
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return ctx.SendString(body)
}
