package services

import (
	"context"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HousekeepingService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewHousekeepingService(db *gorm.DB, log *zap.Logger) *HousekeepingService {
	return &HousekeepingService{db: db, log: log, now: time.Now}
}

type HousekeepingInput struct {
	RoomID       uint       `json:"room_id" binding:"required"`
	AssignedTo   string     `json:"assigned_to"`
	Notes        string     `json:"notes"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

type HousekeepingPatch struct {
	RoomID       *uint      `json:"room_id"`
	AssignedTo   *string    `json:"assigned_to"`
	Notes        *string    `json:"notes"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

type HousekeepingFilter struct {
	Status string
	RoomID uint
}

// scheduleCleaning opens a pending task for each room, due on day.
func scheduleCleaning(tx *gorm.DB, roomIDs []uint, day time.Time) error {
	if len(roomIDs) == 0 {
		return nil
	}
	tasks := make([]models.Housekeeping, 0, len(roomIDs))
	for _, id := range roomIDs {
		tasks = append(tasks, models.Housekeeping{
			RoomID:       id,
			Notes:        "Turnover cleaning after check-out",
			ScheduledFor: utils.StartOfDay(day),
			Status:       models.HousekeepingPending,
		})
	}
	return tx.Create(&tasks).Error
}

func (s *HousekeepingService) Create(ctx context.Context, in HousekeepingInput) (*models.Housekeeping, error) {
	if err := s.roomExists(ctx, in.RoomID); err != nil {
		return nil, err
	}
	scheduled := s.now()
	if in.ScheduledFor != nil {
		scheduled = *in.ScheduledFor
	}
	task := &models.Housekeeping{
		RoomID:       in.RoomID,
		AssignedTo:   in.AssignedTo,
		Notes:        in.Notes,
		ScheduledFor: utils.StartOfDay(scheduled),
		Status:       models.HousekeepingPending,
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	s.log.Info("housekeeping task created", zap.Uint("task_id", task.ID), zap.Uint("room_id", task.RoomID))
	return s.Get(ctx, task.ID)
}

func (s *HousekeepingService) roomExists(ctx context.Context, id uint) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return newError(ErrNotFound, "room not found")
	}
	return nil
}

func (s *HousekeepingService) List(ctx context.Context, f HousekeepingFilter) ([]models.Housekeeping, error) {
	q := s.db.WithContext(ctx).Preload("Room").Order("scheduled_for ASC, id ASC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomID > 0 {
		q = q.Where("room_id = ?", f.RoomID)
	}
	var tasks []models.Housekeeping
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *HousekeepingService) Get(ctx context.Context, id uint) (*models.Housekeeping, error) {
	var task models.Housekeeping
	if err := s.db.WithContext(ctx).Preload("Room").First(&task, id).Error; err != nil {
		return nil, translate(err, "housekeeping task")
	}
	return &task, nil
}

func (s *HousekeepingService) Update(ctx context.Context, id uint, p HousekeepingPatch) (*models.Housekeeping, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if p.RoomID != nil {
		if err := s.roomExists(ctx, *p.RoomID); err != nil {
			return nil, err
		}
		changes["room_id"] = *p.RoomID
	}
	if p.AssignedTo != nil {
		changes["assigned_to"] = *p.AssignedTo
	}
	if p.Notes != nil {
		changes["notes"] = *p.Notes
	}
	if p.ScheduledFor != nil {
		changes["scheduled_for"] = utils.StartOfDay(*p.ScheduledFor)
	}
	if len(changes) == 0 {
		return task, nil
	}
	if err := s.db.WithContext(ctx).Model(&models.Housekeeping{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// SetStatus records task progress. Completing a task stamps completed_at and
// puts a room that was waiting on cleaning back on sale.
func (s *HousekeepingService) SetStatus(ctx context.Context, id uint, status models.HousekeepingStatus) (*models.Housekeeping, error) {
	if !status.Valid() {
		return nil, invalid("unknown housekeeping status %q", status)
	}
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changes := map[string]interface{}{"status": status, "completed_at": nil}
		if status == models.HousekeepingCompleted {
			changes["completed_at"] = s.now().UTC()
			if err := tx.Model(&models.Room{}).
				Where("id = ? AND status = ?", task.RoomID, models.RoomCleaning).
				Update("status", models.RoomAvailable).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Housekeeping{}).Where("id = ?", id).Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("housekeeping status changed", zap.Uint("task_id", id), zap.String("status", string(status)))
	return s.Get(ctx, id)
}

func (s *HousekeepingService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Housekeeping{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "housekeeping task not found")
	}
	return nil
}
