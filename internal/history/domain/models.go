package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Entry records one completed submission: enough to identify the order
// plus the links returned by the document workflow.
type Entry struct {
	ID             snowflake.ID   `gorm:"primaryKey"`
	ContractNumber string         `gorm:"type:text;not null"`
	Kind           string         `gorm:"type:text;not null;index"`
	ClientName     string         `gorm:"type:text;not null"`
	EventDate      string         `gorm:"type:text;not null"`
	Links          datatypes.JSON `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "history_entries" }
