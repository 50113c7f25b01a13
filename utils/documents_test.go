package utils

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sampleBooking() *models.Booking {
	in := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.Booking{
		ReferenceCode: "HA-7F3K9Q2M",
		User:          models.User{Name: "Rahim Uddin", Email: "rahim@example.com", Phone: "01711111111"},
		Rooms: []models.Room{
			{RoomNumber: "205", Title: "Deluxe Double", Price: 6500},
			{RoomNumber: "101", Title: "Standard Single", Price: 3500},
		},
		CheckIn:       in,
		CheckOut:      in.AddDate(0, 0, 2),
		Nights:        2,
		Guests:        3,
		Subtotal:      20000,
		Discount:      2000,
		TotalAmount:   18000,
		CouponCode:    "WELCOME10",
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
		PaymentRef:    "PAY-HA-7F3K9Q2M-ABC",
		CreatedAt:     in.AddDate(0, 0, -10),
	}
}

func TestBookingReceipt(t *testing.T) {
	out, err := BookingReceipt("Hotel Amin International", sampleBooking(), time.Now())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "Receipt HA-7F3K9Q2M")
}

func TestBookingsWorkbook(t *testing.T) {
	out, err := BookingsWorkbook([]models.Booking{*sampleBooking()})
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.True(t, bytes.HasPrefix(out, []byte("PK")))

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bookings"}, f.GetSheetList())
	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, BookingExportHeader, rows[0])
	assert.Equal(t, "HA-7F3K9Q2M", rows[1][0])
	assert.Equal(t, "205, 101", rows[1][4])
	assert.Equal(t, "18000", rows[1][12])
}

func TestSeedDummyData_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Now()

	require.NoError(t, SeedDummyData(db, "01700000000", "ChangeMe123!", now))
	require.NoError(t, SeedDummyData(db, "01700000000", "ChangeMe123!", now))

	var users, rooms, places, coupons int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.Discover{}).Count(&places)
	db.Model(&models.Coupon{}).Count(&coupons)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(4), rooms)
	assert.Equal(t, int64(3), places)
	assert.Equal(t, int64(1), coupons)

	var admin models.User
	require.NoError(t, db.Where("phone = ?", "01700000000").First(&admin).Error)
	assert.True(t, admin.IsAdmin())
	assert.True(t, CheckPasswordHash("ChangeMe123!", admin.Password))

	var suite models.Room
	require.NoError(t, db.Where("room_number = ?", "501").First(&suite).Error)
	assert.Contains(t, suite.Amenities, "Jacuzzi")
	assert.Equal(t, models.RoomAvailable, suite.Status)
}

func TestSeedDummyData_StopsOnLookupError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	lost := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "phone", "role"}).AddRow(1, "01700000000", models.RoleAdmin))
	mock.ExpectQuery(`SELECT \* FROM "rooms"`).WillReturnError(lost)

	err = SeedDummyData(db, "01700000000", "ChangeMe123!", time.Now())
	assert.ErrorIs(t, err, lost)
	assert.NoError(t, mock.ExpectationsWereMet())
}
