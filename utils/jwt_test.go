package utils

import (
	"testing"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, issued, err := m.CreateToken(42, models.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	token, _, err := m.CreateToken(1, models.RoleUser)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Hour).CreateToken(1, models.RoleUser)
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := MyClaims{UserID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).ValidateJWT(unsigned)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", time.Hour).ValidateJWT("")
	assert.Error(t, err)
}

func TestRefreshTokenStore(t *testing.T) {
	db := testutil.NewDB(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	token, hash, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Equal(t, HashRefreshToken(token), hash)

	require.NoError(t, SaveRefreshToken(db, 7, hash, now.Add(time.Hour)))

	rt, err := ValidateRefreshToken(db, token, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), rt.UserID)

	_, err = ValidateRefreshToken(db, token, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// a second sign-in replaces the stored token
	second, secondHash, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NoError(t, SaveRefreshToken(db, 7, secondHash, now.Add(time.Hour)))
	_, err = ValidateRefreshToken(db, token, now)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	var count int64
	db.Model(&models.RefreshToken{}).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, DeleteRefreshToken(db, second))
	_, err = ValidateRefreshToken(db, second, now)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
