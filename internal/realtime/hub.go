package realtime

import (
	"context"
	"encoding/json"
	"log/slog"

	"campora/pkg/logger"
)

type userMessage struct {
	userID  string
	payload []byte
}

// Hub fans reservation status events out to each user's open websocket
// connections. One goroutine owns the connection maps; register, unregister
// and publish all go through channels.
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	messages   chan userMessage
	logger     *logger.Logger
}

// NewHub creates the websocket hub
func NewHub(appLogger *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		messages:   make(chan userMessage, 256),
		logger:     appLogger,
	}
}

// Run processes hub events until the context is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true

		case client := <-h.unregister:
			if conns, ok := h.clients[client.userID]; ok {
				if _, ok := conns[client]; ok {
					delete(conns, client)
					close(client.send)
					if len(conns) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}

		case msg := <-h.messages:
			for client := range h.clients[msg.userID] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer: drop the connection rather than block the hub
					delete(h.clients[msg.userID], client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			for _, conns := range h.clients {
				for client := range conns {
					close(client.send)
				}
			}
			return
		}
	}
}

// PublishToUser implements the reservation ledger's realtime publisher.
// Marshal failures are logged and dropped; delivery is best effort.
func (h *Hub) PublishToUser(userID string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal realtime event", slog.String("error", err.Error()))
		return
	}

	select {
	case h.messages <- userMessage{userID: userID, payload: payload}:
	default:
		h.logger.Warn("Realtime message buffer full, dropping event", slog.String("user_id", userID))
	}
}
