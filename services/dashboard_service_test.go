package services

import (
	"testing"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	svc, _ := newTestServices(t)
	guest := mustUser(t, svc, "Rahim", "01711111111")
	a := mustRoom(t, svc, "101", 3000, 2)
	b := mustRoom(t, svc, "102", 2000, 2)

	stay := checkedOutBooking(t, svc, guest.ID, a.ID)
	_, err := svc.Feedback.CreateReview(ctx, guest.ID, ReviewInput{BookingID: stay.ID, Rating: 4})
	require.NoError(t, err)

	paid := mustBooking(t, svc, guest.ID, BookingInput{RoomIDs: []uint{b.ID}, CheckIn: day(3), CheckOut: day(5)})
	_, err = svc.Bookings.Pay(ctx, guest.ID, paid.ID, "cash")
	require.NoError(t, err)
	_, err = svc.Complaints.Create(ctx, guest.ID, ComplaintInput{Subject: "Towels", Description: "Need more"})
	require.NoError(t, err)

	st, err := svc.Dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.TotalUsers)
	assert.Equal(t, int64(2), st.TotalRooms)
	assert.Equal(t, int64(1), st.AvailableRooms) // 101 waits for cleaning
	assert.Equal(t, int64(2), st.TotalBookings)
	assert.Equal(t, int64(1), st.ActiveBookings)
	assert.Equal(t, 4000.0, st.Revenue)
	assert.Equal(t, int64(1), st.OpenComplaints)
	assert.Equal(t, int64(1), st.PendingHousekeeping)
	assert.Equal(t, 4.0, st.AverageRating)
}

func TestDashboardService_Revenue(t *testing.T) {
	svc, _ := newTestServices(t)
	guest := mustUser(t, svc, "Rahim", "01711111111")
	room := mustRoom(t, svc, "101", 3000, 2)
	b := mustBooking(t, svc, guest.ID, BookingInput{RoomIDs: []uint{room.ID}, CheckIn: day(1), CheckOut: day(3)})
	_, err := svc.Bookings.Pay(ctx, guest.ID, b.ID, "card")
	require.NoError(t, err)
	mustBooking(t, svc, guest.ID, BookingInput{RoomIDs: []uint{room.ID}, CheckIn: day(4), CheckOut: day(5)})

	// bookings are stamped with the real clock
	svc.Dashboard.now = time.Now
	series, err := svc.Dashboard.Revenue(ctx, 0)
	require.NoError(t, err)
	require.Len(t, series, 7)

	today := series[6]
	assert.Equal(t, utils.StartOfDay(time.Now().UTC()).Format(utils.DateLayout), today.Date)
	assert.Equal(t, 6000.0, today.Revenue)
	assert.Equal(t, 1, today.Bookings)
	assert.Zero(t, series[0].Revenue)

	_, err = svc.Dashboard.Revenue(ctx, 400)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
