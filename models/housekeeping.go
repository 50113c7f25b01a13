package models

import "time"

type HousekeepingStatus string

const (
	HousekeepingPending    HousekeepingStatus = "pending"
	HousekeepingInProgress HousekeepingStatus = "in_progress"
	HousekeepingCompleted  HousekeepingStatus = "completed"
)

func (s HousekeepingStatus) Valid() bool {
	switch s {
	case HousekeepingPending, HousekeepingInProgress, HousekeepingCompleted:
		return true
	}
	return false
}

type Housekeeping struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	RoomID       uint               `gorm:"index;not null" json:"room_id"`
	Room         Room               `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	AssignedTo   string             `gorm:"size:120" json:"assigned_to"`
	Notes        string             `gorm:"type:text" json:"notes,omitempty"`
	ScheduledFor time.Time          `gorm:"index" json:"scheduled_for"`
	Status       HousekeepingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
