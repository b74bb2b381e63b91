package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TriggerHistoryModel is the GORM-specific struct for the 'trigger_histories'
// table. It is the append-only record of delivered notifications and the read
// model for duplicate suppression.
type TriggerHistoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_trigger_histories_dedup,priority:1"`
	Condition    string    `gorm:"type:text;not null;index:idx_trigger_histories_dedup,priority:2"`
	Category     string    `gorm:"type:text;not null"`
	Title        string    `gorm:"type:text;not null"`
	Message      string    `gorm:"type:text;not null"`
	LocationName string    `gorm:"type:text"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	Priority    int               `gorm:"not null;default:100"`
	Identifier  string            `gorm:"type:text;not null;default:'';index:idx_trigger_histories_dedup,priority:3"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	TriggeredAt time.Time         `gorm:"not null;index:idx_trigger_histories_dedup,priority:4,sort:desc"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TriggerHistoryModel) TableName() string {
	return "trigger_histories"
}
