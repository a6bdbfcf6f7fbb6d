package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub broadcasts order events to connected websocket clients, replacing the
// storefront's window-level orderPlaced event.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// GET /ws/orders
func (h *Hub) OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

type orderPlacedEvent struct {
	Event      string `json:"event"`
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id"`
	GrandTotal string `json:"grand_total"`
}

// BroadcastOrderPlaced notifies every connected client that a checkout
// passed admission.
func (h *Hub) BroadcastOrderPlaced(userID string, grandTotal decimal.Decimal) {
	data, err := json.Marshal(orderPlacedEvent{
		Event:      "order_placed",
		OrderID:    uuid.NewString(),
		UserID:     userID,
		GrandTotal: grandTotal.StringFixed(2),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
