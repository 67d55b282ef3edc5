// order_web_socket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Martokim/TamuCuts-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClients is touched by every connection goroutine and by request
// goroutines broadcasting orders, so all access goes through wsMu.
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

func registerWSClient(conn *websocket.Conn) {
	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()
}

func unregisterWSClient(conn *websocket.Conn) {
	wsMu.Lock()
	delete(wsClients, conn)
	wsMu.Unlock()
}

func wsClientSnapshot() []*websocket.Conn {
	wsMu.Lock()
	defer wsMu.Unlock()
	conns := make([]*websocket.Conn, 0, len(wsClients))
	for conn := range wsClients {
		conns = append(conns, conn)
	}
	return conns
}

// GET /api/orders/ws
// Pushes every newly placed order to connected shop dashboards.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	registerWSClient(conn)
	defer unregisterWSClient(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}
	for _, client := range wsClientSnapshot() {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
