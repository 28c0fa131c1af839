package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a viewer connection to the hub. Pass uuid.Nil as the
// mission id to follow the whole feed.
func ServeWs(hub *Hub, c *websocket.Conn, missionID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, MissionID: missionID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
