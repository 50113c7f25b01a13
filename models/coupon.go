package models

import "time"

// Coupon is a percent-off discount code with a limited number of redemptions.
type Coupon struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:40;uniqueIndex;not null" json:"code"`
	Description string    `gorm:"size:300" json:"description,omitempty"`
	Percentage  float64   `gorm:"type:decimal(5,2);not null" json:"percentage"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	ExpiresAt   time.Time `gorm:"not null;index" json:"expires_at"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Usable reports whether the coupon can still be redeemed at now.
func (c *Coupon) Usable(now time.Time) bool {
	return c.Active && c.Quantity > 0 && now.Before(c.ExpiresAt)
}
