package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Draft is the autosaved working copy of a form, one row per service
// kind. The payload is the raw order JSON as last edited; it has not
// been validated or derived.
type Draft struct {
	Key       string         `gorm:"primaryKey;type:text"`
	Kind      string         `gorm:"type:text;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Draft) TableName() string { return "drafts" }

// KeyFor builds the storage key for a service kind.
func KeyFor(kind string) string { return "draft-" + kind }
