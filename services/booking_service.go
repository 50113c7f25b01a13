package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingService struct {
	db        *gorm.DB
	coupons   *CouponService
	hotelName string
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingService(db *gorm.DB, coupons *CouponService, hotelName string, log *zap.Logger) *BookingService {
	return &BookingService{db: db, coupons: coupons, hotelName: hotelName, log: log, now: time.Now}
}

type BookingInput struct {
	RoomIDs    []uint
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	CouponCode string
	Notes      string
}

type BookingFilter struct {
	Status string
	Search string
	From   *time.Time
	To     *time.Time
}

func newReferenceCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "HA-" + strings.ToUpper(id[:10])
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lockRooms loads the rooms, holding row locks on postgres so concurrent
// bookings of the same room serialise.
func lockRooms(tx *gorm.DB, ids []uint) ([]models.Room, error) {
	q := tx.Where("id IN ?", ids).Order("id ASC")
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// Create books the rooms for userID. Availability is re-checked and the
// coupon redeemed in the same transaction that inserts the booking.
func (s *BookingService) Create(ctx context.Context, userID uint, in BookingInput) (*models.Booking, error) {
	ids := uniqueIDs(in.RoomIDs)
	if len(ids) == 0 {
		return nil, invalid("select at least one room")
	}
	checkIn, checkOut := utils.StartOfDay(in.CheckIn), utils.StartOfDay(in.CheckOut)
	if checkIn.Before(utils.StartOfDay(s.now())) {
		return nil, invalid("check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return nil, invalid("check-out must be after check-in")
	}
	if in.Guests < 1 {
		return nil, invalid("at least one guest is required")
	}
	nights := utils.Nights(checkIn, checkOut)

	booking := &models.Booking{
		ReferenceCode: newReferenceCode(),
		UserID:        userID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Guests:        in.Guests,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
		Notes:         strings.TrimSpace(in.Notes),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms, err := lockRooms(tx, ids)
		if err != nil {
			return err
		}
		if len(rooms) != len(ids) {
			return newError(ErrNotFound, "one or more rooms were not found")
		}

		capacity := 0
		for _, r := range rooms {
			if r.Status == models.RoomMaintenance {
				return newError(ErrUnavailable, "room %s is under maintenance", r.RoomNumber)
			}
			capacity += r.Capacity
		}
		if in.Guests > capacity {
			return invalid("%d guests exceed the selected rooms' capacity of %d", in.Guests, capacity)
		}

		var taken []uint
		if err := occupiedRoomIDs(tx, checkIn, checkOut).
			Where("booking_rooms.room_id IN ?", ids).
			Pluck("booking_rooms.room_id", &taken).Error; err != nil {
			return err
		}
		if len(taken) > 0 {
			return newError(ErrUnavailable, "%s not available for the selected dates", roomNumbers(rooms, taken))
		}

		quote := Quote{Subtotal: StaySubtotal(rooms, nights)}
		quote.Total = quote.Subtotal
		if code := strings.TrimSpace(in.CouponCode); code != "" {
			c, err := s.coupons.redeem(tx, code)
			if err != nil {
				return err
			}
			quote = PercentOff(quote.Subtotal, c.Percentage)
			booking.CouponCode = c.Code
		}
		booking.Subtotal = quote.Subtotal
		booking.Discount = quote.Discount
		booking.TotalAmount = quote.Total
		booking.Rooms = rooms

		// the rooms already exist; only the join rows are written
		return tx.Omit("Rooms.*").Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("reference", booking.ReferenceCode),
		zap.Uint("user_id", userID),
		zap.Int("rooms", len(ids)),
		zap.Float64("total", booking.TotalAmount))
	return s.Get(ctx, booking.ID)
}

func roomNumbers(rooms []models.Room, ids []uint) string {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var numbers []string
	for _, r := range rooms {
		if want[r.ID] {
			numbers = append(numbers, r.RoomNumber)
		}
	}
	if len(numbers) == 1 {
		return "room " + numbers[0] + " is"
	}
	return "rooms " + strings.Join(numbers, ", ") + " are"
}

func (s *BookingService) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Rooms")
}

func (s *BookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.preload(s.db.WithContext(ctx)).First(&b, id).Error; err != nil {
		return nil, translate(err, "booking")
	}
	return &b, nil
}

// GetFor returns the booking when the actor owns it or is an admin.
func (s *BookingService) GetFor(ctx context.Context, actor Actor, id uint) (*models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.UserID != actor.ID {
		return nil, newError(ErrForbidden, "this booking belongs to another guest")
	}
	return b, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Preload("Rooms").
		Where("user_id = ?", userID).
		Order("check_in DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) List(ctx context.Context, f BookingFilter) ([]models.Booking, error) {
	q := s.preload(s.db.WithContext(ctx)).Order("bookings.created_at DESC")
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Joins("JOIN users ON users.id = bookings.user_id").
			Where("LOWER(bookings.reference_code) LIKE ? OR LOWER(users.name) LIKE ? OR LOWER(users.email) LIKE ? OR users.phone LIKE ?",
				like, like, like, like)
	}
	if f.From != nil {
		q = q.Where("bookings.check_in >= ?", utils.StartOfDay(*f.From))
	}
	if f.To != nil {
		q = q.Where("bookings.check_in <= ?", utils.StartOfDay(*f.To))
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// release undoes what an active booking holds: the coupon use and, when paid,
// the payment.
func (s *BookingService) release(tx *gorm.DB, b *models.Booking) (map[string]interface{}, error) {
	changes := map[string]interface{}{"status": models.BookingCancelled}
	if b.PaymentStatus == models.PaymentPaid {
		changes["payment_status"] = models.PaymentRefunded
	}
	if err := s.coupons.restore(tx, b.CouponCode); err != nil {
		return nil, err
	}
	return changes, nil
}

// lockBooking re-reads a booking inside tx, holding its row lock on postgres
// so concurrent status changes of the same booking serialise.
func lockBooking(tx *gorm.DB, id uint) (*models.Booking, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var b models.Booking
	if err := q.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err, "booking")
	}
	return &b, nil
}

// updateFrom writes changes only while the booking is still in one of the
// given statuses. A concurrent change that got there first is a conflict.
func updateFrom(tx *gorm.DB, id uint, from []models.BookingStatus, changes map[string]interface{}) error {
	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return conflict("booking was changed by another request")
	}
	return nil
}

var activeUnpaid = []models.BookingStatus{models.BookingPending, models.BookingConfirmed}

// Cancel lets a guest cancel a pending or confirmed booking.
func (s *BookingService) Cancel(ctx context.Context, userID, id uint) (*models.Booking, error) {
	var ref string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, id)
		if err != nil {
			return err
		}
		if b.UserID != userID {
			return newError(ErrForbidden, "this booking belongs to another guest")
		}
		if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
			return conflict("a %s booking cannot be cancelled", b.Status)
		}
		ref = b.ReferenceCode

		changes, err := s.release(tx, b)
		if err != nil {
			return err
		}
		return updateFrom(tx, b.ID, activeUnpaid, changes)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("booking cancelled", zap.String("reference", ref), zap.Uint("user_id", userID))
	return s.Get(ctx, id)
}

// Pay runs the mock payment for an unpaid booking and confirms it.
func (s *BookingService) Pay(ctx context.Context, userID, id uint, method string) (*models.Booking, error) {
	var ref, paymentRef string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := lockBooking(tx, id)
		if err != nil {
			return err
		}
		if b.UserID != userID {
			return newError(ErrForbidden, "this booking belongs to another guest")
		}
		if b.PaymentStatus != models.PaymentUnpaid {
			return conflict("booking is already %s", b.PaymentStatus)
		}
		if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
			return conflict("a %s booking cannot be paid", b.Status)
		}
		ref = b.ReferenceCode

		paymentRef, err = utils.ProcessPaymentStub(b.TotalAmount, method, b.ReferenceCode)
		if err != nil {
			return invalid("%s", err.Error())
		}
		changes := map[string]interface{}{
			"payment_status": models.PaymentPaid,
			"payment_method": strings.ToLower(method),
			"payment_ref":    paymentRef,
		}
		if b.Status == models.BookingPending {
			changes["status"] = models.BookingConfirmed
		}
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND payment_status = ? AND status IN ?", b.ID, models.PaymentUnpaid, activeUnpaid).
			Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return conflict("booking was changed by another request")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("booking paid", zap.String("reference", ref), zap.String("payment_ref", paymentRef))
	return s.Get(ctx, id)
}

// UpdateStatus moves a booking along its lifecycle. Checking in occupies the
// rooms; checking out sends them to cleaning with a housekeeping task each.
func (s *BookingService) UpdateStatus(ctx context.Context, id uint, next models.BookingStatus) (*models.Booking, error) {
	if !next.Valid() {
		return nil, invalid("unknown booking status %q", next)
	}

	var b *models.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if b, err = lockBooking(tx, id); err != nil {
			return err
		}
		if !b.Status.CanTransition(next) {
			return conflict("cannot change booking from %s to %s", b.Status, next)
		}

		var roomIDs []uint
		if err := tx.Table("booking_rooms").Where("booking_id = ?", b.ID).
			Order("room_id ASC").Pluck("room_id", &roomIDs).Error; err != nil {
			return err
		}

		changes := map[string]interface{}{"status": next}
		switch next {
		case models.BookingCancelled:
			released, err := s.release(tx, b)
			if err != nil {
				return err
			}
			changes = released
		case models.BookingCheckedIn:
			if err := setRoomStatus(tx, roomIDs, models.RoomOccupied); err != nil {
				return err
			}
		case models.BookingCheckedOut:
			if err := setRoomStatus(tx, roomIDs, models.RoomCleaning); err != nil {
				return err
			}
			if err := scheduleCleaning(tx, roomIDs, s.now()); err != nil {
				return err
			}
		}
		return updateFrom(tx, b.ID, []models.BookingStatus{b.Status}, changes)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("booking status changed",
		zap.String("reference", b.ReferenceCode),
		zap.String("from", string(b.Status)),
		zap.String("to", string(next)))
	return s.Get(ctx, id)
}

func setRoomStatus(tx *gorm.DB, ids []uint, status models.RoomStatus) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&models.Room{}).Where("id IN ?", ids).Update("status", status).Error
}

// Delete removes a booking with its room links and review. A booking that
// could still have been cancelled gives its coupon use back.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.Status == models.BookingPending || b.Status == models.BookingConfirmed {
			if err := s.coupons.restore(tx, b.CouponCode); err != nil {
				return err
			}
		}
		if err := tx.Model(b).Association("Rooms").Clear(); err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", b.ID).Delete(&models.BookingReview{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Complaint{}).Where("booking_id = ?", b.ID).Update("booking_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, b.ID).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("booking deleted", zap.String("reference", b.ReferenceCode))
	return nil
}

// Receipt renders the PDF receipt of a booking the actor may see.
func (s *BookingService) Receipt(ctx context.Context, actor Actor, id uint) (*models.Booking, []byte, error) {
	b, err := s.GetFor(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := utils.BookingReceipt(s.hotelName, b, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("render receipt: %w", err)
	}
	return b, pdf, nil
}

// Export writes the bookings matching f to an xlsx workbook.
func (s *BookingService) Export(ctx context.Context, f BookingFilter) ([]byte, error) {
	bookings, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return utils.BookingsWorkbook(bookings)
}
