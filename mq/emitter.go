package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"greenvale/db"
	"greenvale/models"
	"greenvale/rdx"
	"greenvale/utils"
)

const auditChannel = "park-events"

// Event describes a mutation performed by a handler, published for the
// audit worker to persist.
type Event struct {
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Actor    string `json:"actor,omitempty"`
	Details  string `json:"details,omitempty"`
}

// Emit publishes the event to Redis; persistence happens in the worker.
// Handlers call this on a goroutine, so the publish runs on its own context
// rather than the request context, which may already be canceled.
func Emit(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdx.Conn.Publish(pubCtx, auditChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartAuditWorker subscribes to the audit channel and writes each event
// into the audit log collection.
func StartAuditWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, auditChannel)
	ch := sub.Channel()

	log.Println("[AuditWorker] Listening for park events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[AuditWorker] Failed to parse event: %v", err)
			continue
		}

		entry := models.AuditLog{
			AuditID:   utils.GetUUID(),
			Action:    event.Action,
			Entity:    event.Entity,
			EntityID:  event.EntityID,
			Actor:     event.Actor,
			Details:   event.Details,
			CreatedAt: time.Now(),
		}
		if _, err := db.AuditCollection.InsertOne(ctx, entry); err != nil {
			log.Printf("[AuditWorker] Insert failed: %v", err)
		}
	}
}
