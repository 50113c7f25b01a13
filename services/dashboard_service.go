package services

import (
	"context"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

type Stats struct {
	TotalUsers          int64   `json:"total_users"`
	TotalRooms          int64   `json:"total_rooms"`
	AvailableRooms      int64   `json:"available_rooms"`
	TotalBookings       int64   `json:"total_bookings"`
	ActiveBookings      int64   `json:"active_bookings"`
	Revenue             float64 `json:"revenue"`
	OpenComplaints      int64   `json:"open_complaints"`
	PendingHousekeeping int64   `json:"pending_housekeeping"`
	AverageRating       float64 `json:"average_rating"`
	UnreadMessages      int64   `json:"unread_messages"`
}

type DailyRevenue struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	db := s.db.WithContext(ctx)
	var st Stats
	counts := []struct {
		q    *gorm.DB
		dest *int64
	}{
		{db.Model(&models.User{}), &st.TotalUsers},
		{db.Model(&models.Room{}), &st.TotalRooms},
		{db.Model(&models.Room{}).Where("status = ?", models.RoomAvailable), &st.AvailableRooms},
		{db.Model(&models.Booking{}), &st.TotalBookings},
		{db.Model(&models.Booking{}).Where("status IN ?", models.ActiveBookingStatuses), &st.ActiveBookings},
		{db.Model(&models.Complaint{}).Where("status IN ?", []models.ComplaintStatus{models.ComplaintOpen, models.ComplaintInProgress}), &st.OpenComplaints},
		{db.Model(&models.Housekeeping{}).Where("status <> ?", models.HousekeepingCompleted), &st.PendingHousekeeping},
		{db.Model(&models.ContactMessage{}).Where("read = ?", false), &st.UnreadMessages},
	}
	for _, c := range counts {
		if err := c.q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var revenue, rating struct{ Value *float64 }
	if err := db.Model(&models.Booking{}).Select("SUM(total_amount) AS value").
		Where("payment_status = ?", models.PaymentPaid).Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.BookingReview{}).Select("AVG(rating) AS value").Scan(&rating).Error; err != nil {
		return nil, err
	}
	if revenue.Value != nil {
		st.Revenue = decimal.NewFromFloat(*revenue.Value).Round(2).InexactFloat64()
	}
	if rating.Value != nil {
		st.AverageRating = decimal.NewFromFloat(*rating.Value).Round(2).InexactFloat64()
	}
	return &st, nil
}

// Revenue returns paid revenue per day for the last days days, oldest first,
// including days without bookings. Bucketing happens here rather than in SQL
// so it works the same on every supported database.
func (s *DashboardService) Revenue(ctx context.Context, days int) ([]DailyRevenue, error) {
	if days <= 0 {
		days = 7
	}
	if days > 366 {
		return nil, invalid("days must be at most 366")
	}
	start := utils.StartOfDay(s.now().UTC()).AddDate(0, 0, -(days - 1))

	var rows []struct {
		CreatedAt   time.Time
		TotalAmount float64
	}
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("created_at", "total_amount").
		Where("payment_status = ? AND created_at >= ?", models.PaymentPaid, start).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, days)
	counts := make(map[string]int, days)
	for _, r := range rows {
		day := r.CreatedAt.UTC().Format(utils.DateLayout)
		sums[day] = sums[day].Add(decimal.NewFromFloat(r.TotalAmount))
		counts[day]++
	}

	out := make([]DailyRevenue, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format(utils.DateLayout)
		out = append(out, DailyRevenue{
			Date:     day,
			Revenue:  sums[day].Round(2).InexactFloat64(),
			Bookings: counts[day],
		})
	}
	return out, nil
}
