package services

import (
	"context"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedbackService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFeedbackService(db *gorm.DB, log *zap.Logger) *FeedbackService {
	return &FeedbackService{db: db, log: log}
}

type ReviewInput struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateReview rates a finished stay. Each booking takes one review.
func (s *FeedbackService) CreateReview(ctx context.Context, userID uint, in ReviewInput) (*models.BookingReview, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, invalid("rating must be between 1 and 5")
	}
	var b models.Booking
	if err := s.db.WithContext(ctx).First(&b, in.BookingID).Error; err != nil {
		return nil, translate(err, "booking")
	}
	if b.UserID != userID {
		return nil, newError(ErrForbidden, "this booking belongs to another guest")
	}
	if b.Status != models.BookingCheckedOut {
		return nil, newError(ErrUnprocessable, "only completed stays can be reviewed")
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.BookingReview{}).Where("booking_id = ?", b.ID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, conflict("this booking has already been reviewed")
	}

	review := &models.BookingReview{
		BookingID: b.ID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	}
	if err := s.db.WithContext(ctx).Omit("Booking", "User").Create(review).Error; err != nil {
		return nil, err
	}
	s.log.Info("review posted", zap.Uint("booking_id", b.ID), zap.Int("rating", in.Rating))
	return review, nil
}

// Review is the public shape of a booking review. It carries the reviewer's
// name and nothing else about them.
type Review struct {
	ID           uint      `json:"id"`
	BookingID    uint      `json:"booking_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewerName string    `json:"reviewer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListReviews returns reviews newest first, optionally only those for stays
// that included roomID.
func (s *FeedbackService) ListReviews(ctx context.Context, roomID uint) ([]Review, error) {
	db := s.db.WithContext(ctx)
	q := db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Unscoped().Select("id", "name")
	}).Order("created_at DESC")
	if roomID > 0 {
		q = q.Where("booking_id IN (?)", db.Table("booking_rooms").Select("booking_id").Where("room_id = ?", roomID))
	}
	var rows []models.BookingReview
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]Review, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, Review{
			ID:           r.ID,
			BookingID:    r.BookingID,
			Rating:       r.Rating,
			Comment:      r.Comment,
			ReviewerName: r.User.Name,
			CreatedAt:    r.CreatedAt,
		})
	}
	return reviews, nil
}

func (s *FeedbackService) DeleteReview(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.BookingReview{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "review not found")
	}
	return nil
}

func (s *FeedbackService) CreateContact(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return nil, invalid("name, email, subject and message are required")
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}
	s.log.Info("contact message received", zap.Uint("message_id", msg.ID))
	return msg, nil
}

func (s *FeedbackService) ListContacts(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	var msgs []models.ContactMessage
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *FeedbackService) MarkContactRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, translate(err, "message")
	}
	if err := s.db.WithContext(ctx).Model(&msg).Update("read", true).Error; err != nil {
		return nil, err
	}
	msg.Read = true
	return &msg, nil
}
