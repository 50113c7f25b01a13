package services

import (
	"context"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoomService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{db: db, log: log, now: time.Now}
}

type RoomInput struct {
	RoomNumber  string            `json:"room_number" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Type        string            `json:"type" binding:"required"`
	Description string            `json:"description"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Capacity    int               `json:"capacity" binding:"required,gt=0"`
	Beds        int               `json:"beds"`
	Size        int               `json:"size"`
	Floor       int               `json:"floor"`
	Amenities   []string          `json:"amenities"`
	Images      []string          `json:"images"`
	Status      models.RoomStatus `json:"status"`
}

type RoomPatch struct {
	RoomNumber  *string   `json:"room_number"`
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" binding:"omitempty,gt=0"`
	Capacity    *int      `json:"capacity" binding:"omitempty,gt=0"`
	Beds        *int      `json:"beds"`
	Size        *int      `json:"size"`
	Floor       *int      `json:"floor"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
}

type RoomFilter struct {
	Type     string
	Status   string
	MinPrice float64
	MaxPrice float64
	Guests   int
}

// AvailabilityQuery asks for rooms free over [CheckIn, CheckOut).
type AvailabilityQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Type     string
}

func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.RoomNumber)
	if number == "" {
		return nil, invalid("room number is required")
	}
	if !models.ValidRoomType(in.Type) {
		return nil, invalid("unknown room type %q", in.Type)
	}
	status := in.Status
	if status == "" {
		status = models.RoomAvailable
	}
	if !status.Valid() {
		return nil, invalid("unknown room status %q", status)
	}
	if err := s.ensureNumberFree(ctx, 0, number); err != nil {
		return nil, err
	}

	room := &models.Room{
		RoomNumber:  number,
		Title:       strings.TrimSpace(in.Title),
		Type:        in.Type,
		Description: in.Description,
		Price:       in.Price,
		Capacity:    in.Capacity,
		Beds:        in.Beds,
		Size:        in.Size,
		Floor:       in.Floor,
		Amenities:   in.Amenities,
		Images:      in.Images,
		Status:      status,
	}
	if room.Beds == 0 {
		room.Beds = 1
	}
	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return nil, err
	}
	s.log.Info("room created", zap.Uint("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return room, nil
}

func (s *RoomService) ensureNumberFree(ctx context.Context, selfID uint, number string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ? AND id <> ?", number, selfID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflict("room number %s already exists", number)
	}
	return nil
}

func (s *RoomService) List(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Order("room_number ASC")
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Guests > 0 {
		q = q.Where("capacity >= ?", f.Guests)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, translate(err, "room")
	}
	return &room, nil
}

// occupiedRoomIDs selects the rooms held by an active booking that overlaps
// [checkIn, checkOut). Back-to-back stays do not overlap.
func occupiedRoomIDs(db *gorm.DB, checkIn, checkOut time.Time) *gorm.DB {
	return db.Table("booking_rooms").
		Select("booking_rooms.room_id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("bookings.status IN ?", models.ActiveBookingStatuses).
		Where("bookings.check_in < ? AND bookings.check_out > ?", checkOut.UTC(), checkIn.UTC())
}

// Search lists rooms that can take q.Guests over the requested dates.
func (s *RoomService) Search(ctx context.Context, q AvailabilityQuery) ([]models.Room, error) {
	if !q.CheckOut.After(q.CheckIn) {
		return nil, invalid("check-out must be after check-in")
	}
	db := s.db.WithContext(ctx)
	query := db.Where("status <> ?", models.RoomMaintenance).
		Where("id NOT IN (?)", occupiedRoomIDs(db, q.CheckIn, q.CheckOut)).
		Order("price ASC")
	if q.Guests > 0 {
		query = query.Where("capacity >= ?", q.Guests)
	}
	if q.Type != "" {
		query = query.Where("type = ?", q.Type)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, p RoomPatch) (*models.Room, error) {
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if p.RoomNumber != nil {
		number := strings.TrimSpace(*p.RoomNumber)
		if number == "" {
			return nil, invalid("room number is required")
		}
		if err := s.ensureNumberFree(ctx, id, number); err != nil {
			return nil, err
		}
		changes["room_number"] = number
	}
	if p.Title != nil {
		changes["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Type != nil {
		if !models.ValidRoomType(*p.Type) {
			return nil, invalid("unknown room type %q", *p.Type)
		}
		changes["type"] = *p.Type
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Price != nil {
		changes["price"] = *p.Price
	}
	if p.Capacity != nil {
		changes["capacity"] = *p.Capacity
	}
	if p.Beds != nil {
		changes["beds"] = *p.Beds
	}
	if p.Size != nil {
		changes["size"] = *p.Size
	}
	if p.Floor != nil {
		changes["floor"] = *p.Floor
	}
	if p.Amenities != nil {
		room.Amenities = *p.Amenities
		changes["amenities"] = room.Amenities
	}
	if p.Images != nil {
		room.Images = *p.Images
		changes["images"] = room.Images
	}
	if len(changes) == 0 {
		return room, nil
	}
	if err := s.db.WithContext(ctx).Model(room).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *RoomService) SetStatus(ctx context.Context, id uint, status models.RoomStatus) (*models.Room, error) {
	if !status.Valid() {
		return nil, invalid("unknown room status %q", status)
	}
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(room).Update("status", status).Error; err != nil {
		return nil, err
	}
	room.Status = status
	s.log.Info("room status changed", zap.Uint("room_id", id), zap.String("status", string(status)))
	return room, nil
}

// Delete removes a room that has no upcoming active bookings. Links from past
// bookings are dropped with it.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	today := utils.StartOfDay(s.now())

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var upcoming int64
		if err := tx.Table("booking_rooms").
			Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
			Where("booking_rooms.room_id = ?", id).
			Where("bookings.status IN ?", models.ActiveBookingStatuses).
			Where("bookings.check_out > ?", today).
			Count(&upcoming).Error; err != nil {
			return err
		}
		if upcoming > 0 {
			return conflict("room has %d upcoming booking(s)", upcoming)
		}
		if err := tx.Exec("DELETE FROM booking_rooms WHERE room_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Housekeeping{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Room{}, id).Error; err != nil {
			return err
		}
		s.log.Info("room deleted", zap.Uint("room_id", id))
		return nil
	})
}
