package services

import (
	"context"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplaintService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewComplaintService(db *gorm.DB, log *zap.Logger) *ComplaintService {
	return &ComplaintService{db: db, log: log, now: time.Now}
}

type ComplaintInput struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	BookingID   *uint  `json:"bookingId"`
}

type ComplaintResponse struct {
	Status   models.ComplaintStatus `json:"status" binding:"required"`
	Response string                 `json:"response"`
}

func (s *ComplaintService) Create(ctx context.Context, userID uint, in ComplaintInput) (*models.Complaint, error) {
	if in.BookingID != nil {
		var b models.Booking
		if err := s.db.WithContext(ctx).Select("id", "user_id").First(&b, *in.BookingID).Error; err != nil {
			return nil, translate(err, "booking")
		}
		if b.UserID != userID {
			return nil, newError(ErrForbidden, "this booking belongs to another guest")
		}
	}
	c := &models.Complaint{
		UserID:      userID,
		BookingID:   in.BookingID,
		Subject:     strings.TrimSpace(in.Subject),
		Description: strings.TrimSpace(in.Description),
		Status:      models.ComplaintOpen,
	}
	if c.Subject == "" || c.Description == "" {
		return nil, invalid("subject and description are required")
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	s.log.Info("complaint filed", zap.Uint("complaint_id", c.ID), zap.Uint("user_id", userID))
	return c, nil
}

func (s *ComplaintService) ListForUser(ctx context.Context, userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *ComplaintService) List(ctx context.Context, status string) ([]models.Complaint, error) {
	q := s.db.WithContext(ctx).Preload("User").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *ComplaintService) Get(ctx context.Context, actor Actor, id uint) (*models.Complaint, error) {
	var c models.Complaint
	if err := s.db.WithContext(ctx).Preload("User").First(&c, id).Error; err != nil {
		return nil, translate(err, "complaint")
	}
	if !actor.IsAdmin() && c.UserID != actor.ID {
		return nil, newError(ErrForbidden, "this complaint belongs to another guest")
	}
	return &c, nil
}

// Respond records the staff answer. Resolving stamps resolved_at.
func (s *ComplaintService) Respond(ctx context.Context, id uint, in ComplaintResponse) (*models.Complaint, error) {
	if !in.Status.Valid() {
		return nil, invalid("unknown complaint status %q", in.Status)
	}
	var c models.Complaint
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "complaint")
	}

	changes := map[string]interface{}{"status": in.Status}
	if r := strings.TrimSpace(in.Response); r != "" {
		changes["response"] = r
	}
	switch {
	case in.Status == models.ComplaintResolved && c.ResolvedAt == nil:
		changes["resolved_at"] = s.now().UTC()
	case in.Status == models.ComplaintOpen || in.Status == models.ComplaintInProgress:
		changes["resolved_at"] = nil
	}
	if err := s.db.WithContext(ctx).Model(&models.Complaint{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	s.log.Info("complaint answered", zap.Uint("complaint_id", id), zap.String("status", string(in.Status)))
	return s.Get(ctx, Actor{Role: models.RoleAdmin}, id)
}

func (s *ComplaintService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Complaint{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "complaint not found")
	}
	return nil
}
