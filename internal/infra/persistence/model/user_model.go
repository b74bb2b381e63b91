// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel is the GORM-specific struct for the 'users' table. The trigger
// engine only reads this table; account management writes it elsewhere.
type UserModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Nickname      string                      `gorm:"type:text;not null"`
	Interests     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	LastLatitude  *float64                    `gorm:"type:decimal(10,8)"`
	LastLongitude *float64                    `gorm:"type:decimal(11,8)"`
	Active        bool                        `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
