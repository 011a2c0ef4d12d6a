package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// Itinerary is a persisted day-plan. Activities and recommendations are
// stored as jsonb payloads so the store never reinterprets what the
// planner produced. The store owns ID and CreatedAt assignment.
type Itinerary struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          *uint  `gorm:"index"`
	Title           string `gorm:"not null"`
	Description     string
	Location        string         `gorm:"not null"`
	Activities      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Recommendations datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}
