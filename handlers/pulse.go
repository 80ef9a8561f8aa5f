// handlers/pulse.go - Live team pulse feed over WebSocket
package handlers

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// PulseEvent is one realtime event pushed to connected dashboards.
type PulseEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

var (
	pulseClients = make(map[*websocket.Conn]bool)
	pulseMu      sync.Mutex
)

// PulseUpgrade rejects non-WebSocket requests on the pulse route
func PulseUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// PulseHandler keeps a dashboard connection subscribed to pulse events
// until it disconnects. The feed is broadcast-only; client messages are
// drained and discarded.
var PulseHandler = websocket.New(func(conn *websocket.Conn) {
	pulseMu.Lock()
	pulseClients[conn] = true
	pulseMu.Unlock()

	defer func() {
		pulseMu.Lock()
		delete(pulseClients, conn)
		pulseMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
})

// BroadcastPulse pushes an event to every connected dashboard. Slow or dead
// connections are dropped rather than blocking the sender.
func BroadcastPulse(event PulseEvent) {
	pulseMu.Lock()
	defer pulseMu.Unlock()

	for conn := range pulseClients {
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Pulse client write failed, dropping connection: %v", err)
			delete(pulseClients, conn)
			conn.Close()
		}
	}
}
