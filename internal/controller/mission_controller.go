package controller

import (
	"errors"

	"signal-for-good-be/internal/pkg/serverutils"
	"signal-for-good-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMissionController interface {
	RegisterRoutes(r fiber.Router)
	GetBuckets(ctx *fiber.Ctx) error
	GetMissions(ctx *fiber.Ctx) error
	GetMissionDetail(ctx *fiber.Ctx) error
	GetAgents(ctx *fiber.Ctx) error
}

type missionController struct {
	service service.IMissionService
}

func NewMissionController(service service.IMissionService) IMissionController {
	return &missionController{service: service}
}

func (c *missionController) RegisterRoutes(r fiber.Router) {
	r.Get("/buckets", c.GetBuckets)
	r.Get("/missions", c.GetMissions)
	r.Get("/missions/:id", c.GetMissionDetail)
	r.Get("/agents", c.GetAgents)
}

func (c *missionController) GetBuckets(ctx *fiber.Ctx) error {
	res, err := c.service.ListBuckets(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Buckets", res))
}

func (c *missionController) GetMissions(ctx *fiber.Ctx) error {
	filter := service.MissionListFilter{
		BucketSlug: ctx.Query("bucket"),
		Status:     ctx.Query("status"),
		Limit:      ctx.QueryInt("limit", 50),
		Offset:     ctx.QueryInt("offset", 0),
	}
	res, err := c.service.ListMissions(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Missions", res))
}

func (c *missionController) GetMissionDetail(ctx *fiber.Ctx) error {
	missionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid mission id"))
	}

	res, err := c.service.GetMissionDetail(ctx.Context(), missionId)
	if err != nil {
		if errors.Is(err, service.ErrMissionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "mission not found"))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mission detail", res))
}

func (c *missionController) GetAgents(ctx *fiber.Ctx) error {
	res, err := c.service.ListAgents(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Agents", res))
}
