package services

import (
	"context"
	"testing"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/store"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/testutil"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	ctx      = context.Background()
	fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	admin    = Actor{ID: 900, Role: models.RoleAdmin}
)

// day returns the calendar day n days after fixedNow.
func day(n int) time.Time {
	return utils.StartOfDay(fixedNow).AddDate(0, 0, n)
}

func newTestServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := New(db, store.NewMemoryKV(), Options{
		Tokens:     utils.NewTokenManager("test-secret", time.Hour),
		RefreshTTL: 24 * time.Hour,
		HotelName:  "Hotel Amin International",
	})
	clock := func() time.Time { return fixedNow }
	svc.Rooms.now = clock
	svc.Coupons.now = clock
	svc.Bookings.now = clock
	svc.Housekeeping.now = clock
	svc.Complaints.now = clock
	svc.Auth.now = clock
	return svc, db
}

func mustUser(t *testing.T, svc *Services, name, phone string) *models.User {
	t.Helper()
	u, err := svc.Auth.Signup(ctx, SignupInput{
		Name:     name,
		Email:    phone + "@example.com",
		Phone:    phone,
		Password: "secret123",
	})
	require.NoError(t, err)
	return u
}

func mustRoom(t *testing.T, svc *Services, number string, price float64, capacity int) *models.Room {
	t.Helper()
	r, err := svc.Rooms.Create(ctx, RoomInput{
		RoomNumber: number,
		Title:      "Room " + number,
		Type:       "double",
		Price:      price,
		Capacity:   capacity,
		Amenities:  []string{"Wi-Fi"},
	})
	require.NoError(t, err)
	return r
}

func mustCoupon(t *testing.T, svc *Services, code string, pct float64, qty int) *models.Coupon {
	t.Helper()
	c, err := svc.Coupons.Create(ctx, CouponInput{
		Code:       code,
		Percentage: pct,
		Quantity:   qty,
		ExpiresAt:  fixedNow.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	return c
}

func mustBooking(t *testing.T, svc *Services, userID uint, in BookingInput) *models.Booking {
	t.Helper()
	if in.Guests == 0 {
		in.Guests = 1
	}
	b, err := svc.Bookings.Create(ctx, userID, in)
	require.NoError(t, err)
	return b
}
