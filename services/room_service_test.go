package services

import (
	"testing"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRoomService_CreateValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	mustRoom(t, svc, "101", 3000, 2)

	_, err := svc.Rooms.Create(ctx, RoomInput{RoomNumber: "101", Title: "Dup", Type: "single", Price: 1, Capacity: 1})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Rooms.Create(ctx, RoomInput{RoomNumber: "102", Title: "Odd", Type: "penthouse", Price: 1, Capacity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Rooms.Create(ctx, RoomInput{RoomNumber: "103", Title: "Odd", Type: "single", Price: 1, Capacity: 1, Status: "haunted"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoomService_ListFilters(t *testing.T) {
	svc, _ := newTestServices(t)
	small := mustRoom(t, svc, "101", 3000, 1)
	big := mustRoom(t, svc, "201", 9000, 4)

	rooms, err := svc.Rooms.List(ctx, RoomFilter{MinPrice: 5000})
	require.NoError(t, err)
	assert.Equal(t, []uint{big.ID}, roomIDs(rooms))

	rooms, err = svc.Rooms.List(ctx, RoomFilter{MaxPrice: 5000})
	require.NoError(t, err)
	assert.Equal(t, []uint{small.ID}, roomIDs(rooms))

	rooms, err = svc.Rooms.List(ctx, RoomFilter{Guests: 3})
	require.NoError(t, err)
	assert.Equal(t, []uint{big.ID}, roomIDs(rooms))

	_, err = svc.Rooms.SetStatus(ctx, small.ID, models.RoomMaintenance)
	require.NoError(t, err)
	rooms, err = svc.Rooms.List(ctx, RoomFilter{Status: string(models.RoomMaintenance)})
	require.NoError(t, err)
	assert.Equal(t, []uint{small.ID}, roomIDs(rooms))
}

func TestRoomService_SearchOverlap(t *testing.T) {
	svc, _ := newTestServices(t)
	guest := mustUser(t, svc, "Rahim", "01711111111")
	booked := mustRoom(t, svc, "101", 3000, 2)
	free := mustRoom(t, svc, "102", 3500, 2)
	// stay covers nights 10, 11 and 12
	b := mustBooking(t, svc, guest.ID, BookingInput{RoomIDs: []uint{booked.ID}, CheckIn: day(10), CheckOut: day(13)})

	tests := []struct {
		name    string
		in, out int
		want    []uint
	}{
		{"overlapping tail", 12, 14, []uint{free.ID}},
		{"overlapping head", 8, 11, []uint{free.ID}},
		{"enclosing", 9, 15, []uint{free.ID}},
		{"back-to-back after", 13, 15, []uint{booked.ID, free.ID}},
		{"back-to-back before", 7, 10, []uint{booked.ID, free.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := svc.Rooms.Search(ctx, AvailabilityQuery{CheckIn: day(tt.in), CheckOut: day(tt.out)})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, roomIDs(rooms))
		})
	}

	_, err := svc.Bookings.Cancel(ctx, guest.ID, b.ID)
	require.NoError(t, err)
	rooms, err := svc.Rooms.Search(ctx, AvailabilityQuery{CheckIn: day(11), CheckOut: day(12)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{booked.ID, free.ID}, roomIDs(rooms))
}

func TestRoomService_SearchFilters(t *testing.T) {
	svc, _ := newTestServices(t)
	small := mustRoom(t, svc, "101", 3000, 1)
	big := mustRoom(t, svc, "201", 9000, 4)
	mustRoom(t, svc, "301", 4000, 4)
	_, err := svc.Rooms.SetStatus(ctx, 3, models.RoomMaintenance)
	require.NoError(t, err)

	rooms, err := svc.Rooms.Search(ctx, AvailabilityQuery{CheckIn: day(1), CheckOut: day(2), Guests: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{big.ID}, roomIDs(rooms))

	rooms, err = svc.Rooms.Search(ctx, AvailabilityQuery{CheckIn: day(1), CheckOut: day(2)})
	require.NoError(t, err)
	assert.Equal(t, []uint{small.ID, big.ID}, roomIDs(rooms))

	_, err = svc.Rooms.Search(ctx, AvailabilityQuery{CheckIn: day(2), CheckOut: day(2)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoomService_UpdateAndDelete(t *testing.T) {
	svc, _ := newTestServices(t)
	guest := mustUser(t, svc, "Rahim", "01711111111")
	room := mustRoom(t, svc, "101", 3000, 2)
	other := mustRoom(t, svc, "102", 3000, 2)

	price := 3200.0
	amenities := []string{"Wi-Fi", "Sea view"}
	updated, err := svc.Rooms.Update(ctx, room.ID, RoomPatch{Price: &price, Amenities: &amenities})
	require.NoError(t, err)
	assert.Equal(t, 3200.0, updated.Price)
	assert.Equal(t, []string{"Wi-Fi", "Sea view"}, []string(updated.Amenities))

	number := "102"
	_, err = svc.Rooms.Update(ctx, room.ID, RoomPatch{RoomNumber: &number})
	assert.ErrorIs(t, err, ErrConflict)

	mustBooking(t, svc, guest.ID, BookingInput{RoomIDs: []uint{room.ID}, CheckIn: day(3), CheckOut: day(4)})
	assert.ErrorIs(t, svc.Rooms.Delete(ctx, room.ID), ErrConflict)

	require.NoError(t, svc.Rooms.Delete(ctx, other.ID))
	_, err = svc.Rooms.Get(ctx, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Rooms.Delete(ctx, other.ID), ErrNotFound)
}
