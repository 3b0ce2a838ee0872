package ws

import (
	"encoding/json"
	"log/slog"

	model "circle-backend/internal/domain/models"
	ports "circle-backend/internal/domain/ports/output"
)

// Hub fans broadcast events out to every connected client. Events are not
// addressed per connection; targeted events carry a userId and clients
// filter on it themselves.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewHub(log ports.Logger, metrics ports.MetricsProvider) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		log:        log,
		metrics:    metrics,
	}
}

// Broadcast implements ports.Broadcaster. It never blocks the caller: if
// the hub's queue is full the event is dropped and logged.
func (h *Hub) Broadcast(event model.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to marshal websocket event",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn("Websocket broadcast queue full, dropping event",
			slog.String("type", string(event.Type)))
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.metrics.SetWebsocketConnections(len(h.clients))
			h.log.Debug("Websocket client connected", slog.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.metrics.SetWebsocketConnections(len(h.clients))
				h.log.Debug("Websocket client disconnected", slog.Int("clients", len(h.clients)))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop the connection rather than the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.metrics.SetWebsocketConnections(len(h.clients))
		}
	}
}
