package service

import (
	"context"
)

// TriggerEvent is the notification-intent event emitted once per delivered
// (non-duplicate) trigger. An external dispatch subsystem (push, webhook,
// email) consumes it; delivery is out of scope here.
type TriggerEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	UserID       string            `json:"user_id"`
	Condition    string            `json:"condition"`
	Category     string            `json:"category"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	LocationName string            `json:"location_name,omitempty"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
	Priority     int               `json:"priority"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// NotificationPublisher defines the interface for publishing notification-intent
// events to a message queue.
type NotificationPublisher interface {
	// PublishTriggerEvent publishes a trigger event for async dispatch.
	PublishTriggerEvent(ctx context.Context, event *TriggerEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
