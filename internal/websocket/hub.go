package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/logger"
	"fx-backoffice-be/internal/pricefeed"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "fx_cluster_events"

// Hub tracks live websocket connections keyed by recipient id. Admins and
// users share the same hub, the recipient id disambiguates. Redis pub/sub
// carries notifications across instances; price snapshots stay local since
// every instance runs its own feed relay.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client
	log logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		log:        log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToCluster()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.RecipientID] = append(h.clients[client.RecipientID], client)
			h.mu.Unlock()
			h.log.Info("hub", "client registered", map[string]interface{}{"recipient_id": client.RecipientID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.RecipientID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.RecipientID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.RecipientID]) == 0 {
					delete(h.clients, client.RecipientID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers a notification to every device of one recipient, here and
// on other instances via the cluster channel.
func (h *Hub) Send(recipientId uuid.UUID, notification *entity.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.deliverLocal(recipientId, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_id": recipientId.String(),
			"message":   json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

// StreamPrices pushes every relay snapshot to all connected clients. It
// blocks until the relay stops, run it in a goroutine.
func (h *Hub) StreamPrices(relay *pricefeed.Relay) {
	snapshots, cancel := relay.Subscribe()
	defer cancel()

	for snapshot := range snapshots {
		data, _ := json.Marshal(map[string]interface{}{
			"type":      "prices",
			"data":      snapshot.Prices,
			"timestamp": snapshot.Timestamp,
		})
		h.broadcastLocal(data)
	}
}

func (h *Hub) deliverLocal(recipientId uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := h.clients[recipientId]
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.log.Warn("hub", "send buffer full, dropping client", map[string]interface{}{"recipient_id": recipientId})
			h.unregister <- client
		}
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

func (h *Hub) subscribeToCluster() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetID string          `json:"target_id"`
			Message  json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.log.Warn("hub", "bad cluster message", map[string]interface{}{"error": err.Error()})
			continue
		}

		targetId, err := uuid.Parse(payload.TargetID)
		if err != nil {
			continue
		}
		h.deliverLocal(targetId, payload.Message)
	}
}
