package entity

import (
	"time"

	"github.com/google/uuid"
)

// TriggerHistory is the append-only fact of a past delivered trigger. It is
// created exactly once per non-duplicate trigger and read back by the
// duplicate-suppression policies; it is never updated or deleted here.
type TriggerHistory struct {
	ID           uuid.UUID            `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	Condition    TriggerCondition     `json:"condition"`
	Category     NotificationCategory `json:"category"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	LocationName string               `json:"location_name"`
	Latitude     *float64             `json:"latitude"`  // User latitude at trigger time, if known.
	Longitude    *float64             `json:"longitude"` // User longitude at trigger time, if known.
	Priority     int                  `json:"priority"`
	Identifier   string               `json:"identifier"` // Policy-selected unique identifier (e.g. station or event ID), empty when none.
	Metadata     map[string]string    `json:"metadata"`
	TriggeredAt  time.Time            `json:"triggered_at"`
	CreatedAt    time.Time            `json:"created_at"`
}
