package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type revocationList struct {
	ids map[string]bool
	err error
}

func (r *revocationList) IsRevoked(_ context.Context, claims *utils.MyClaims) (bool, error) {
	return r.ids[claims.ID], r.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *utils.TokenManager, revoked RevocationChecker) *gin.Engine {
	r := gin.New()
	auth := r.Group("/", AuthMiddleware(tokens, revoked))
	auth.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "role": CurrentRole(c), "jti": CurrentClaims(c).ID})
	})
	auth.GET("/admin", AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	userToken, userClaims, err := tokens.CreateToken(5, models.RoleUser)
	require.NoError(t, err)
	adminToken, _, err := tokens.CreateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	foreign, _, err := utils.NewTokenManager("other", time.Hour).CreateToken(5, models.RoleAdmin)
	require.NoError(t, err)

	revoked := &revocationList{ids: map[string]bool{}}
	r := newRouter(tokens, revoked)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic " + userToken, http.StatusUnauthorized},
		{"bad signature", "/me", "Bearer " + foreign, http.StatusUnauthorized},
		{"user token", "/me", "Bearer " + userToken, http.StatusOK},
		{"lower-case scheme", "/me", "bearer " + userToken, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + adminToken, http.StatusNoContent},
		{"no token on admin route", "/admin", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, tt.path, tt.header).Code)
		})
	}

	w := do(r, "/me", "Bearer "+userToken)
	assert.JSONEq(t, `{"id":5,"role":"user","jti":"`+userClaims.ID+`"}`, w.Body.String())

	revoked.ids[userClaims.ID] = true
	w = do(r, "/me", "Bearer "+userToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")

	revoked.err = errors.New("redis down")
	assert.Equal(t, http.StatusServiceUnavailable, do(r, "/me", "Bearer "+adminToken).Code)
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(RequestLogger(log), Recovery(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	assert.Equal(t, http.StatusOK, do(r, "/ok?x=1", "").Code)
	w := do(r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	requests := logs.FilterMessage("request").All()
	require.Len(t, requests, 2)
	assert.Equal(t, "/ok?x=1", requests[0].ContextMap()["path"])
	assert.Equal(t, int64(500), requests[1].ContextMap()["status"])
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
