package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventTTL bounds how long audit events stay queryable.
const EventTTL = 30 * 24 * time.Hour

// SendEvent stores an audit event in Redis and indexes it on the global and
// per-type timelines. Event emission is best effort; a redis hiccup must not
// fail the user action that produced the event.
func SendEvent(ctx context.Context, redisClient *redis.Client, eventType string, eventData map[string]interface{}) {
	if redisClient == nil {
		return
	}

	eventID := uuid.New().String()
	timestamp := time.Now().Unix()

	eventData["type"] = eventType
	eventJSON, _ := json.Marshal(eventData)

	event := struct {
		ID        string          `json:"id"`
		Event     json.RawMessage `json:"event"`
		Timestamp int64           `json:"timestamp"`
	}{
		ID:        eventID,
		Event:     eventJSON,
		Timestamp: timestamp,
	}

	fullEventJSON, _ := json.Marshal(event)
	pipe := redisClient.Pipeline()
	pipe.Set(ctx, "event:"+eventID, fullEventJSON, EventTTL)
	pipe.ZAdd(ctx, "events:timeline", redis.Z{Score: float64(timestamp), Member: eventID})
	pipe.ZAdd(ctx, "events:type:"+eventType, redis.Z{Score: float64(timestamp), Member: eventID})

	if userID, ok := eventData["user_id"].(string); ok && userID != "" {
		pipe.ZAdd(ctx, "events:user:"+userID, redis.Z{Score: float64(timestamp), Member: eventID})
	}

	_, _ = pipe.Exec(ctx)
}
