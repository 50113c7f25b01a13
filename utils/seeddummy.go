package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"gorm.io/gorm"
)

// SeedDummyData inserts an admin account, sample rooms, discover places and a
// welcome coupon. Rows that already exist are left alone.
func SeedDummyData(db *gorm.DB, adminPhone, adminPassword string, now time.Time) error {
	var admin models.User
	err := db.Where("phone = ?", adminPhone).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := HashPassword(adminPassword)
		if err != nil {
			return err
		}
		admin = models.User{
			Name:     "Administrator",
			Email:    "admin@hotelamin.local",
			Phone:    adminPhone,
			Password: hash,
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	} else if err != nil {
		return err
	}

	rooms := []models.Room{
		{
			RoomNumber: "101", Title: "Standard Single", Type: "single", Price: 3500, Capacity: 1, Beds: 1, Size: 220, Floor: 1,
			Description: "Quiet single room facing the garden.",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "TV"},
			Images:      []string{"/static/img/rooms/101.jpg"},
		},
		{
			RoomNumber: "205", Title: "Deluxe Double", Type: "deluxe", Price: 6500, Capacity: 2, Beds: 1, Size: 340, Floor: 2,
			Description: "King bed, city view and a work desk.",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "Mini bar", "Breakfast"},
			Images:      []string{"/static/img/rooms/205.jpg"},
		},
		{
			RoomNumber: "310", Title: "Family Room", Type: "family", Price: 9000, Capacity: 4, Beds: 2, Size: 480, Floor: 3,
			Description: "Two queen beds and a sitting area.",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "Bathtub", "Breakfast"},
			Images:      []string{"/static/img/rooms/310.jpg"},
		},
		{
			RoomNumber: "501", Title: "Executive Suite", Type: "suite", Price: 15000, Capacity: 3, Beds: 1, Size: 720, Floor: 5,
			Description: "Separate lounge, panoramic windows and butler service.",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "Mini bar", "Jacuzzi", "Airport pickup"},
			Images:      []string{"/static/img/rooms/501.jpg"},
		},
	}
	for _, r := range rooms {
		r.Status = models.RoomAvailable
		if err := createUnlessFound(db, &models.Room{}, &r, "room_number = ?", r.RoomNumber); err != nil {
			return fmt.Errorf("seed room %s: %w", r.RoomNumber, err)
		}
	}

	places := []models.Discover{
		{Title: "Cox's Bazar Beach", Category: "beach", Location: "Cox's Bazar", DistanceKM: 4.5,
			Description: "The longest natural sea beach in the world.", Images: []string{"/static/img/discover/beach.jpg"}},
		{Title: "Himchari National Park", Category: "nature", Location: "Himchari", DistanceKM: 12,
			Description: "Waterfalls and hill trails above the sea.", Images: []string{"/static/img/discover/himchari.jpg"}},
		{Title: "Burmese Market", Category: "shopping", Location: "Jhawtala", DistanceKM: 2,
			Description: "Handicrafts, pickles and local textiles.", Images: []string{"/static/img/discover/market.jpg"}},
	}
	for _, p := range places {
		if err := createUnlessFound(db, &models.Discover{}, &p, "title = ?", p.Title); err != nil {
			return fmt.Errorf("seed discover %s: %w", p.Title, err)
		}
	}

	coupon := models.Coupon{
		Code:        "WELCOME10",
		Description: "10% off your first stay",
		Percentage:  10,
		Quantity:    100,
		ExpiresAt:   now.AddDate(1, 0, 0),
		Active:      true,
	}
	if err := createUnlessFound(db, &models.Coupon{}, &coupon, "code = ?", coupon.Code); err != nil {
		return fmt.Errorf("seed coupon: %w", err)
	}
	return nil
}

// createUnlessFound inserts row when no record matches query. Lookup
// failures other than not-found are returned as is.
func createUnlessFound(db *gorm.DB, existing, row interface{}, query string, args ...interface{}) error {
	err := db.Where(query, args...).First(existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(row).Error
	}
	return err
}
