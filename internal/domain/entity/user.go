package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an app user with declared interests and an optional
// last-known location. Account management itself lives outside this service;
// this is the read model consumed by trigger evaluation.
type User struct {
	ID            uuid.UUID          `json:"id"`
	Nickname      string             `json:"nickname"`
	Interests     []InterestCategory `json:"interests"`
	LastLatitude  *float64           `json:"last_latitude"`  // Last reported latitude, if any.
	LastLongitude *float64           `json:"last_longitude"` // Last reported longitude, if any.
	Active        bool               `json:"active"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
