package models

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BookingID   *uint           `gorm:"index" json:"booking_id,omitempty"`
	Subject     string          `gorm:"size:200;not null" json:"subject"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Status      ComplaintStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	Response    string          `gorm:"type:text" json:"response,omitempty"`
	ResolvedAt  *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
