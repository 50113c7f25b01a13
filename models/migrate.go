package models

import "gorm.io/gorm"

// All lists every persisted entity in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{}, &RefreshToken{}, &Room{}, &Coupon{}, &Discover{},
		&Booking{}, &BookingReview{}, &ContactMessage{}, &Housekeeping{}, &Complaint{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
