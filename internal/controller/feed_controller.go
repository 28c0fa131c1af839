package controller

import (
	ws "signal-for-good-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IFeedController interface {
	RegisterRoutes(app *fiber.App)
}

type feedController struct {
	hub *ws.Hub
}

func NewFeedController(hub *ws.Hub) IFeedController {
	return &feedController{hub: hub}
}

func (c *feedController) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// /ws/debates streams the whole feed; /ws/debates/:id a single mission.
	app.Get("/ws/debates", websocket.New(func(conn *websocket.Conn) {
		ws.ServeWs(c.hub, conn, uuid.Nil)
	}))
	app.Get("/ws/debates/:id", websocket.New(func(conn *websocket.Conn) {
		missionID, err := uuid.Parse(conn.Params("id"))
		if err != nil {
			conn.Close()
			return
		}
		ws.ServeWs(c.hub, conn, missionID)
	}))
}
