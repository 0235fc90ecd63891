package mq

import (
	"context"
	"encoding/json"
	"log"

	"petalia/rdx"
)

const channel = "shop-events"

// Event is a lightweight change notification published after writes.
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Method     string `json:"method"`
}

// Emit publishes an event to Redis; consumers pick it up asynchronously.
func Emit(ctx context.Context, eventName string, content Event) {
	payload := map[string]any{
		"event":      eventName,
		"entityType": content.EntityType,
		"entityId":   content.EntityID,
		"method":     content.Method,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartEventWorker subscribes to the shop event channel and hands every
// payload to the given sink (typically the admin order feed hub).
func StartEventWorker(sink func(payload []byte)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for shop events...")

	for msg := range ch {
		if sink != nil {
			sink([]byte(msg.Payload))
		}
	}
}
