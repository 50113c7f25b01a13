package services

import (
	"context"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	log      *zap.Logger
	sessions sessionRevoker
}

// sessionRevoker ends the outstanding access tokens of a user.
type sessionRevoker interface {
	RevokeUser(ctx context.Context, userID uint) error
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

type UserFilter struct {
	Search string
	Role   string
}

// UserPatch carries a partial profile update. Nil fields are left alone.
type UserPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Role    *string `json:"role"`
}

func (s *UserService) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	q := s.db.WithContext(ctx).Order("id ASC")
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", like, like, like)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return users, nil
	}

	var counts []struct {
		UserID uint
		Total  int64
	}
	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("user_id, COUNT(*) AS total").
		Group("user_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byUser := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byUser[c.UserID] = c.Total
	}
	for i := range users {
		users[i].BookingsCount = byUser[users[i].ID]
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

// GetFor returns the user when the actor is that user or an admin.
func (s *UserService) GetFor(ctx context.Context, actor Actor, id uint) (*models.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, ErrForbidden
	}
	return s.Get(ctx, id)
}

// FindByLogin looks a user up by phone number or email address.
func (s *UserService) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, invalid("phone or email is required")
	}
	var u models.User
	q := s.db.WithContext(ctx)
	if strings.Contains(login, "@") {
		q = q.Where("email = ?", strings.ToLower(login))
	} else {
		q = q.Where("phone = ?", login)
	}
	if err := q.First(&u).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &u, nil
}

func (s *UserService) Create(ctx context.Context, u *models.User, password string) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if !models.ValidRole(u.Role) {
		return invalid("unknown role %q", u.Role)
	}
	if err := s.ensureUnique(ctx, 0, u.Email, u.Phone); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return err
	}
	s.log.Info("user created", zap.Uint("user_id", u.ID), zap.String("role", u.Role))
	return nil
}

// ensureUnique fails with ErrConflict when another user owns email or phone.
func (s *UserService) ensureUnique(ctx context.Context, selfID uint, email, phone string) error {
	var n int64
	if email != "" {
		if err := s.db.WithContext(ctx).Unscoped().Model(&models.User{}).
			Where("email = ? AND id <> ?", email, selfID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return conflict("email already registered")
		}
	}
	if phone != "" {
		if err := s.db.WithContext(ctx).Unscoped().Model(&models.User{}).
			Where("phone = ? AND id <> ?", phone, selfID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return conflict("phone already registered")
		}
	}
	return nil
}

// Update applies p to the user. Only admins may change roles.
func (s *UserService) Update(ctx context.Context, actor Actor, id uint, p UserPatch) (*models.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, ErrForbidden
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		changes["name"] = name
	}
	var email, phone string
	if p.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*p.Email))
		if email == "" {
			return nil, invalid("email cannot be empty")
		}
		changes["email"] = email
	}
	if p.Phone != nil {
		phone = strings.TrimSpace(*p.Phone)
		if phone == "" {
			return nil, invalid("phone cannot be empty")
		}
		changes["phone"] = phone
	}
	if p.Address != nil {
		changes["address"] = strings.TrimSpace(*p.Address)
	}
	if p.Role != nil {
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
		if !models.ValidRole(*p.Role) {
			return nil, invalid("unknown role %q", *p.Role)
		}
		changes["role"] = *p.Role
	}
	if len(changes) == 0 {
		return u, nil
	}
	if err := s.ensureUnique(ctx, id, email, phone); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(u).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ToggleBlock flips the blocked flag. Blocking also drops the user's refresh
// token so no new access tokens can be minted.
func (s *UserService) ToggleBlock(ctx context.Context, actor Actor, id uint) (*models.User, error) {
	if actor.ID == id {
		return nil, invalid("you cannot block your own account")
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	blocked := !u.Blocked
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", u.ID).Update("blocked", blocked).Error; err != nil {
			return err
		}
		if !blocked {
			return nil
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return s.revokeSessions(ctx, u.ID)
	})
	if err != nil {
		return nil, err
	}
	u.Blocked = blocked
	s.log.Info("user block toggled", zap.Uint("user_id", u.ID), zap.Bool("blocked", u.Blocked))
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, actor Actor, id uint) error {
	if actor.ID == id {
		return invalid("you cannot delete your own account")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return err
		}
		return s.revokeSessions(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}

func (s *UserService) revokeSessions(ctx context.Context, id uint) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.RevokeUser(ctx, id)
}

func (s *UserService) ChangePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, u.Password) {
		return invalid("current password is incorrect")
	}
	if len(newPassword) < 6 {
		return invalid("new password must be at least 6 characters")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(u).Update("password", hashed).Error
}
