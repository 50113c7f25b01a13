// Package services holds the hotel's business rules. Controllers call into it
// and it talks to the database through gorm.
package services

import (
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/store"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// Options configures New.
type Options struct {
	Tokens     *utils.TokenManager
	RefreshTTL time.Duration
	HotelName  string
	Log        *zap.Logger
}

type Services struct {
	Auth         *AuthService
	Users        *UserService
	Rooms        *RoomService
	Coupons      *CouponService
	Discover     *DiscoverService
	Bookings     *BookingService
	Feedback     *FeedbackService
	Housekeeping *HousekeepingService
	Complaints   *ComplaintService
	Dashboard    *DashboardService
}

func New(db *gorm.DB, kv store.KV, opts Options) *Services {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	users := NewUserService(db, log)
	coupons := NewCouponService(db, log)
	auth := NewAuthService(db, kv, users, opts.Tokens, opts.RefreshTTL, log)
	users.sessions = auth
	return &Services{
		Auth:         auth,
		Users:        users,
		Rooms:        NewRoomService(db, log),
		Coupons:      coupons,
		Discover:     NewDiscoverService(db),
		Bookings:     NewBookingService(db, coupons, opts.HotelName, log),
		Feedback:     NewFeedbackService(db, log),
		Housekeeping: NewHousekeepingService(db, log),
		Complaints:   NewComplaintService(db, log),
		Dashboard:    NewDashboardService(db),
	}
}
