package services

import (
	"context"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CouponService struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewCouponService(db *gorm.DB, log *zap.Logger) *CouponService {
	return &CouponService{db: db, log: log, now: time.Now}
}

type CouponInput struct {
	Code        string    `json:"code" binding:"required"`
	Description string    `json:"description"`
	Percentage  float64   `json:"percentage" binding:"required,gt=0,lte=100"`
	Quantity    int       `json:"quantity" binding:"gte=0"`
	ExpiresAt   time.Time `json:"expires_at" binding:"required"`
	Active      *bool     `json:"active"`
}

type CouponPatch struct {
	Code        *string    `json:"code"`
	Description *string    `json:"description"`
	Percentage  *float64   `json:"percentage" binding:"omitempty,gt=0,lte=100"`
	Quantity    *int       `json:"quantity" binding:"omitempty,gte=0"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Active      *bool      `json:"active"`
}

// CouponQuote is the result of applying a coupon to an amount.
type CouponQuote struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	Quote
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *CouponService) Create(ctx context.Context, in CouponInput) (*models.Coupon, error) {
	code := normalizeCode(in.Code)
	if code == "" {
		return nil, invalid("coupon code is required")
	}
	if in.Percentage <= 0 || in.Percentage > 100 {
		return nil, invalid("percentage must be between 0 and 100")
	}
	if in.Quantity < 0 {
		return nil, invalid("quantity cannot be negative")
	}
	if err := s.ensureCodeFree(ctx, 0, code); err != nil {
		return nil, err
	}

	c := &models.Coupon{
		Code:        code,
		Description: in.Description,
		Percentage:  in.Percentage,
		Quantity:    in.Quantity,
		ExpiresAt:   in.ExpiresAt.UTC(),
		Active:      in.Active == nil || *in.Active,
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	s.log.Info("coupon created", zap.String("code", c.Code), zap.Float64("percentage", c.Percentage))
	return c, nil
}

func (s *CouponService) ensureCodeFree(ctx context.Context, selfID uint, code string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Coupon{}).
		Where("code = ? AND id <> ?", code, selfID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return conflict("coupon %s already exists", code)
	}
	return nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (s *CouponService) Get(ctx context.Context, id uint) (*models.Coupon, error) {
	var c models.Coupon
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "coupon")
	}
	return &c, nil
}

func (s *CouponService) Update(ctx context.Context, id uint, p CouponPatch) (*models.Coupon, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if p.Code != nil {
		code := normalizeCode(*p.Code)
		if code == "" {
			return nil, invalid("coupon code is required")
		}
		if err := s.ensureCodeFree(ctx, id, code); err != nil {
			return nil, err
		}
		changes["code"] = code
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Percentage != nil {
		if *p.Percentage <= 0 || *p.Percentage > 100 {
			return nil, invalid("percentage must be between 0 and 100")
		}
		changes["percentage"] = *p.Percentage
	}
	if p.Quantity != nil {
		if *p.Quantity < 0 {
			return nil, invalid("quantity cannot be negative")
		}
		changes["quantity"] = *p.Quantity
	}
	if p.ExpiresAt != nil {
		changes["expires_at"] = p.ExpiresAt.UTC()
	}
	if p.Active != nil {
		changes["active"] = *p.Active
	}
	if len(changes) == 0 {
		return c, nil
	}
	if err := s.db.WithContext(ctx).Model(c).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *CouponService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Coupon{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "coupon not found")
	}
	return nil
}

func (s *CouponService) findUsable(db *gorm.DB, code string) (*models.Coupon, error) {
	var c models.Coupon
	if err := db.Where("code = ?", normalizeCode(code)).First(&c).Error; err != nil {
		return nil, translate(err, "coupon")
	}
	now := s.now()
	switch {
	case !c.Active:
		return nil, newError(ErrUnprocessable, "coupon %s is not active", c.Code)
	case !now.Before(c.ExpiresAt):
		return nil, newError(ErrUnprocessable, "coupon %s has expired", c.Code)
	case c.Quantity <= 0:
		return nil, newError(ErrUnprocessable, "coupon %s has been fully redeemed", c.Code)
	}
	return &c, nil
}

// Apply prices amount with the coupon without redeeming it.
func (s *CouponService) Apply(ctx context.Context, code string, amount float64) (*CouponQuote, error) {
	if amount <= 0 {
		return nil, invalid("amount must be positive")
	}
	c, err := s.findUsable(s.db.WithContext(ctx), code)
	if err != nil {
		return nil, err
	}
	return &CouponQuote{Code: c.Code, Percentage: c.Percentage, Quote: PercentOff(amount, c.Percentage)}, nil
}

// redeem takes one use of the coupon inside tx.
func (s *CouponService) redeem(tx *gorm.DB, code string) (*models.Coupon, error) {
	c, err := s.findUsable(tx, code)
	if err != nil {
		return nil, err
	}
	res := tx.Model(&models.Coupon{}).
		Where("id = ? AND quantity > 0", c.ID).
		UpdateColumn("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, newError(ErrUnprocessable, "coupon %s has been fully redeemed", c.Code)
	}
	c.Quantity--
	s.log.Info("coupon redeemed", zap.String("code", c.Code), zap.Int("remaining", c.Quantity))
	return c, nil
}

// restore gives back a use taken by redeem. A coupon deleted in the meantime
// is ignored.
func (s *CouponService) restore(tx *gorm.DB, code string) error {
	if code == "" {
		return nil
	}
	return tx.Model(&models.Coupon{}).
		Where("code = ?", normalizeCode(code)).
		UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error
}
