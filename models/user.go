package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string         `gorm:"size:32;uniqueIndex;not null" json:"phone"`
	Password  string         `gorm:"not null" json:"-"` // bcrypt hash
	Role      string         `gorm:"type:varchar(20);default:'user';not null" json:"role"`
	Address   string         `gorm:"size:300" json:"address,omitempty"`
	Blocked   bool           `gorm:"default:false" json:"blocked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingsCount int64 `gorm:"-" json:"bookings_count,omitempty"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// RefreshToken keeps the sha256 hash of a user's current refresh token.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	Token     string    `gorm:"size:64;index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
