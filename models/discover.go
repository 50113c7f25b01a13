package models

import (
	"time"

	"gorm.io/datatypes"
)

// Discover is a place of interest near the hotel.
type Discover struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Title       string                      `gorm:"size:200;not null" json:"title"`
	Category    string                      `gorm:"size:60;index" json:"category"`
	Description string                      `gorm:"type:text" json:"description"`
	Location    string                      `gorm:"size:300" json:"location"`
	DistanceKM  float64                     `json:"distance_km"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
