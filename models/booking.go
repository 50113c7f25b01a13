package models

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// ActiveBookingStatuses hold their rooms for the booked dates.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from s to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ReferenceCode string        `gorm:"size:32;uniqueIndex;not null" json:"reference_code"`
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rooms         []Room        `gorm:"many2many:booking_rooms;" json:"rooms,omitempty"`
	CheckIn       time.Time     `gorm:"index;not null" json:"check_in"`
	CheckOut      time.Time     `gorm:"index;not null" json:"check_out"`
	Nights        int           `json:"nights"`
	Guests        int           `json:"guests"`
	Subtotal      float64       `gorm:"type:decimal(10,2)" json:"subtotal"`
	Discount      float64       `gorm:"type:decimal(10,2);default:0" json:"discount"`
	TotalAmount   float64       `gorm:"type:decimal(10,2)" json:"total_amount"`
	CouponCode    string        `gorm:"size:40" json:"coupon_code,omitempty"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentStatus string        `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method,omitempty"`
	PaymentRef    string        `gorm:"size:100" json:"payment_ref,omitempty"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Active reports whether the booking still holds its rooms.
func (b *Booking) Active() bool {
	for _, s := range ActiveBookingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
