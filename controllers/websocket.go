package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/iroro1/et-mobile-new/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clientsMu sync.Mutex
	clients   = make(map[*websocket.Conn]struct{})
)

// HandleWebSocket upgrades the connection and keeps it registered for
// broadcasts until the peer goes away.
func HandleWebSocket(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	clientsMu.Lock()
	clients[conn] = struct{}{}
	clientsMu.Unlock()

	defer func() {
		clientsMu.Lock()
		delete(clients, conn)
		clientsMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastReading pushes a fresh reading to every connected client.
func BroadcastReading(reading models.SensorReading) {
	broadcast(map[string]interface{}{
		"event": "reading",
		"data":  reading,
	})
}

// BroadcastNotification pushes a threshold-breach notification to
// every connected client.
func BroadcastNotification(notification models.Notification) {
	broadcast(map[string]interface{}{
		"event": "notification",
		"data":  notification,
	})
}

func broadcast(payload map[string]interface{}) {
	msg, _ := json.Marshal(payload)

	clientsMu.Lock()
	defer clientsMu.Unlock()
	for conn := range clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
