package models

import (
	"time"

	"gorm.io/datatypes"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

var RoomTypes = []string{"single", "double", "deluxe", "suite", "family"}

func ValidRoomType(t string) bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

type Room struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	RoomNumber  string                      `gorm:"size:20;uniqueIndex;not null" json:"room_number"`
	Title       string                      `gorm:"size:200;not null" json:"title"`
	Type        string                      `gorm:"type:varchar(20);index;not null" json:"type"`
	Description string                      `gorm:"type:text" json:"description"`
	Price       float64                     `gorm:"type:decimal(10,2);not null" json:"price"` // per night
	Capacity    int                         `gorm:"not null;default:1" json:"capacity"`
	Beds        int                         `gorm:"default:1" json:"beds"`
	Size        int                         `json:"size"` // square feet
	Floor       int                         `json:"floor"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Status      RoomStatus                  `gorm:"type:varchar(20);default:'available';index" json:"status"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
