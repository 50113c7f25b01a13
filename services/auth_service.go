package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/store"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	MaxSigninAttempts = 5
	SigninWindow      = 15 * time.Minute
)

type AuthService struct {
	db         *gorm.DB
	kv         store.KV
	users      *UserService
	tokens     *utils.TokenManager
	refreshTTL time.Duration
	log        *zap.Logger
	now        func() time.Time
}

func NewAuthService(db *gorm.DB, kv store.KV, users *UserService, tokens *utils.TokenManager, refreshTTL time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		db:         db,
		kv:         kv,
		users:      users,
		tokens:     tokens,
		refreshTTL: refreshTTL,
		log:        log,
		now:        time.Now,
	}
}

type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=6"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
}

// Session is what a successful sign-in hands back to the client.
type Session struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	u := &models.User{
		Name:    strings.TrimSpace(in.Name),
		Email:   in.Email,
		Phone:   in.Phone,
		Address: strings.TrimSpace(in.Address),
		Role:    models.RoleUser,
	}
	if err := s.users.Create(ctx, u, in.Password); err != nil {
		return nil, err
	}
	return u, nil
}

func signinKey(login string) string {
	return "signin:" + strings.ToLower(strings.TrimSpace(login))
}

func revokedKey(jti string) string {
	return "revoked:" + jti
}

// Signin checks credentials and issues an access and refresh token pair.
// After MaxSigninAttempts failures within SigninWindow the login is locked
// until the window expires.
func (s *AuthService) Signin(ctx context.Context, login, password string) (*Session, error) {
	key := signinKey(login)
	if raw, err := s.kv.Get(ctx, key); err == nil {
		if n, _ := strconv.ParseInt(raw, 10, 64); n >= MaxSigninAttempts {
			return nil, ErrTooManyAttempts
		}
	} else if !errors.Is(err, store.ErrMiss) {
		s.log.Warn("sign-in throttle lookup failed", zap.Error(err))
	}

	u, err := s.users.FindByLogin(ctx, login)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if u == nil || !utils.CheckPasswordHash(password, u.Password) {
		if _, err := s.kv.Incr(ctx, key, SigninWindow); err != nil {
			s.log.Warn("sign-in throttle update failed", zap.Error(err))
		}
		return nil, newError(ErrUnauthorized, "invalid credentials")
	}
	if u.Blocked {
		return nil, newError(ErrForbidden, "your account has been blocked")
	}
	_ = s.kv.Delete(ctx, key)

	access, _, err := s.tokens.CreateToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	refresh, hashed, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := utils.SaveRefreshToken(s.db.WithContext(ctx), u.ID, hashed, s.now().UTC().Add(s.refreshTTL)); err != nil {
		return nil, err
	}

	s.log.Info("user signed in", zap.Uint("user_id", u.ID), zap.String("role", u.Role))
	return &Session{AccessToken: access, RefreshToken: refresh, User: u}, nil
}

// Refresh mints a new access token carrying the user's current role.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	rt, err := utils.ValidateRefreshToken(s.db.WithContext(ctx), refreshToken, s.now().UTC())
	if err != nil {
		if errors.Is(err, utils.ErrInvalidRefreshToken) {
			return "", newError(ErrUnauthorized, "%s", err.Error())
		}
		return "", err
	}
	u, err := s.users.Get(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", newError(ErrUnauthorized, "account no longer exists")
		}
		return "", err
	}
	if u.Blocked {
		return "", newError(ErrForbidden, "your account has been blocked")
	}
	access, _, err := s.tokens.CreateToken(u.ID, u.Role)
	return access, err
}

// Logout revokes the presented access token until it expires and drops the
// user's refresh token.
func (s *AuthService) Logout(ctx context.Context, claims *utils.MyClaims) error {
	if claims.ID != "" && claims.ExpiresAt != nil {
		ttl := claims.ExpiresAt.Time.Sub(s.now())
		if ttl > 0 {
			if err := s.kv.Set(ctx, revokedKey(claims.ID), "1", ttl); err != nil {
				return err
			}
		}
	}
	if err := s.db.WithContext(ctx).Where("user_id = ?", claims.UserID).Delete(&models.RefreshToken{}).Error; err != nil {
		return err
	}
	s.log.Info("user signed out", zap.Uint("user_id", claims.UserID))
	return nil
}

func userRevokedKey(userID uint) string {
	return "revoked-user:" + strconv.FormatUint(uint64(userID), 10)
}

// RevokeUser invalidates every access token the user holds. Tokens issued
// in the same second as the revocation are rejected too.
func (s *AuthService) RevokeUser(ctx context.Context, userID uint) error {
	cutoff := s.tokens.Now().Unix()
	if err := s.kv.Set(ctx, userRevokedKey(userID), strconv.FormatInt(cutoff, 10), s.tokens.AccessTTL()); err != nil {
		return err
	}
	s.log.Info("user tokens revoked", zap.Uint("user_id", userID))
	return nil
}

// IsRevoked reports whether the token was revoked by Logout or was issued
// before its owner lost access.
func (s *AuthService) IsRevoked(ctx context.Context, claims *utils.MyClaims) (bool, error) {
	if claims.ID != "" {
		_, err := s.kv.Get(ctx, revokedKey(claims.ID))
		switch {
		case err == nil:
			return true, nil
		case !errors.Is(err, store.ErrMiss):
			return false, err
		}
	}

	raw, err := s.kv.Get(ctx, userRevokedKey(claims.UserID))
	if errors.Is(err, store.ErrMiss) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	cutoff, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("bad revocation cutoff %q: %w", raw, err)
	}
	return claims.IssuedAt == nil || claims.IssuedAt.Unix() <= cutoff, nil
}

func (s *AuthService) Tokens() *utils.TokenManager { return s.tokens }
