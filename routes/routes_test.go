package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/store"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/testutil"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newFixture(t *testing.T) *apiFixture {
	t.Helper()
	db := testutil.NewDB(t)
	svc := services.New(db, store.NewMemoryKV(), services.Options{
		Tokens:     utils.NewTokenManager("test-secret", time.Hour),
		RefreshTTL: 24 * time.Hour,
		HotelName:  "Hotel Amin International",
	})
	return &apiFixture{t: t, db: db, router: SetupRouter(svc, zap.NewNop())}
}

func (f *apiFixture) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// signup registers a guest and signs in, returning the access token.
func (f *apiFixture) signup(name, phone string) string {
	f.t.Helper()
	w := f.do(http.MethodPost, "/auth/signup", "", gin.H{
		"name":     name,
		"email":    phone + "@example.com",
		"phone":    phone,
		"password": "secret123",
	})
	require.Equal(f.t, http.StatusCreated, w.Code, w.Body.String())
	return f.signin(phone)
}

func (f *apiFixture) signin(phone string) string {
	f.t.Helper()
	w := f.do(http.MethodPost, "/auth/signin", "", gin.H{"phone": phone, "password": "secret123"})
	require.Equal(f.t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(f.t, w)["accessToken"].(string)
	require.NotEmpty(f.t, token)
	return token
}

func (f *apiFixture) adminToken() string {
	f.t.Helper()
	f.signup("Front Desk", "01700000001")
	require.NoError(f.t, f.db.Model(&models.User{}).
		Where("phone = ?", "01700000001").
		Update("role", models.RoleAdmin).Error)
	return f.signin("01700000001")
}

func (f *apiFixture) createRoom(token, number string, price float64) uint {
	f.t.Helper()
	w := f.do(http.MethodPost, "/room/create", token, gin.H{
		"room_number": number,
		"title":       "Deluxe " + number,
		"type":        "double",
		"price":       price,
		"capacity":    2,
	})
	require.Equal(f.t, http.StatusCreated, w.Code, w.Body.String())
	room := decode(f.t, w)["room"].(map[string]interface{})
	return uint(room["id"].(float64))
}

func date(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestHealthAndNoRoute(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = f.do(http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}

func TestRoleGating(t *testing.T) {
	f := newFixture(t)
	userToken := f.signup("Guest", "01811111111")

	w := f.do(http.MethodGet, "/user/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodGet, "/user/all", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/room/create", userToken, gin.H{"room_number": "101"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := f.adminToken()
	w = f.do(http.MethodGet, "/user/all", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]interface{})
	assert.Len(t, users, 2)

	w = f.do(http.MethodGet, "/auth/admin-verify", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodGet, "/auth/admin-verify", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	token := f.signup("Guest", "01811111111")

	w := f.do(http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestSigninRejectsBadPassword(t *testing.T) {
	f := newFixture(t)
	f.signup("Guest", "01811111111")

	w := f.do(http.MethodPost, "/auth/signin", "", gin.H{"phone": "01811111111", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/auth/signin", "", gin.H{"password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyCoupon(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	userToken := f.signup("Guest", "01811111111")

	w := f.do(http.MethodPost, "/coupon/create", adminToken, gin.H{
		"code":       "summer20",
		"percentage": 20,
		"quantity":   5,
		"expires_at": time.Now().UTC().AddDate(0, 1, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodPost, "/coupon/apply", userToken, gin.H{"code": "SUMMER20", "amount": 4000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	quote := decode(t, w)
	assert.Equal(t, "SUMMER20", quote["code"])
	assert.Equal(t, 800.0, quote["discount"])
	assert.Equal(t, 3200.0, quote["total"])

	w = f.do(http.MethodPost, "/coupon/apply", userToken, gin.H{"code": "NOPE", "amount": 4000})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlow(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")
	other := f.signup("Other", "01922222222")
	roomID := f.createRoom(adminToken, "101", 4500)

	booking := gin.H{
		"roomIds":  []uint{roomID},
		"checkIn":  date(3),
		"checkOut": date(5),
		"guests":   2,
	}
	w := f.do(http.MethodPost, "/booking/create", guest, booking)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["booking"].(map[string]interface{})
	id := uint(created["id"].(float64))
	assert.Equal(t, 9000.0, created["total_amount"])
	assert.Equal(t, "pending", created["status"])

	w = f.do(http.MethodPost, "/booking/create", other, gin.H{
		"roomIds":  []uint{roomID},
		"checkIn":  date(4),
		"checkOut": date(6),
		"guests":   1,
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = f.do(http.MethodGet, fmt.Sprintf("/booking/%d", id), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodGet, fmt.Sprintf("/room/search?check_in=%s&check_out=%s", date(3), date(4)), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode(t, w)["rooms"])

	w = f.do(http.MethodPatch, fmt.Sprintf("/booking/pay/%d", id), guest, gin.H{"method": "card"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	paid := decode(t, w)
	assert.Regexp(t, `^PAY-HA-`, paid["payment_ref"])
	assert.Equal(t, "confirmed", paid["booking"].(map[string]interface{})["status"])

	w = f.do(http.MethodGet, fmt.Sprintf("/booking/receipt/%d", id), guest, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = f.do(http.MethodGet, "/booking/export", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = f.do(http.MethodGet, "/booking/export", guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCancelFreesRoom(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")
	roomID := f.createRoom(adminToken, "205", 3000)

	w := f.do(http.MethodPost, "/booking/create", guest, gin.H{
		"roomIds": []uint{roomID}, "checkIn": date(2), "checkOut": date(3), "guests": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(decode(t, w)["booking"].(map[string]interface{})["id"].(float64))

	w = f.do(http.MethodPatch, fmt.Sprintf("/booking/cancel/%d", id), guest, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(http.MethodPatch, fmt.Sprintf("/booking/cancel/%d", id), guest, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodGet, fmt.Sprintf("/room/search?check_in=%s&check_out=%s", date(2), date(3)), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["rooms"], 1)
}

func TestComplaintLifecycle(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")

	w := f.do(http.MethodPost, "/complaint/create", guest, gin.H{
		"subject":     "Noisy AC",
		"description": "The AC in my room rattles all night.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(decode(t, w)["complaint"].(map[string]interface{})["id"].(float64))

	w = f.do(http.MethodPatch, fmt.Sprintf("/complaint/respond/%d", id), adminToken, gin.H{
		"status":   "resolved",
		"response": "Technician replaced the fan.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(http.MethodGet, "/complaint/my", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)["complaints"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "resolved", list[0].(map[string]interface{})["status"])
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	f.createRoom(adminToken, "101", 4500)

	w := f.do(http.MethodGet, "/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stats := decode(t, w)["stats"].(map[string]interface{})
	assert.Equal(t, 1.0, stats["total_rooms"])

	w = f.do(http.MethodGet, "/admin/revenue?days=3", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode(t, w)["data"], 3)
}

func TestReviewsHideReviewerContact(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Rahim Uddin", "01811111111")
	roomID := f.createRoom(adminToken, "101", 4500)

	w := f.do(http.MethodPost, "/booking/create", guest, gin.H{
		"roomIds": []uint{roomID}, "checkIn": date(2), "checkOut": date(3), "guests": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := uint(decode(t, w)["booking"].(map[string]interface{})["id"].(float64))
	require.NoError(t, f.db.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", models.BookingCheckedOut).Error)

	w = f.do(http.MethodPost, "/feedback/booking-review", "", gin.H{"bookingId": bookingID, "rating": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = f.do(http.MethodPost, "/feedback/booking-review", guest, gin.H{"bookingId": bookingID, "rating": 5, "comment": "Quiet room"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodGet, fmt.Sprintf("/feedback/booking-review?room_id=%d", roomID), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := w.Body.String()
	assert.NotContains(t, body, "email")
	assert.NotContains(t, body, "phone")
	assert.NotContains(t, body, "01811111111")
	assert.NotContains(t, body, "password")

	reviews := decode(t, w)["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	review := reviews[0].(map[string]interface{})
	assert.Equal(t, "Rahim Uddin", review["reviewer_name"])
	assert.Equal(t, 5.0, review["rating"])
	assert.Equal(t, "Quiet room", review["comment"])

	w = f.do(http.MethodGet, "/feedback/booking-review?room_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	reviewID := uint(review["id"].(float64))
	w = f.do(http.MethodDelete, fmt.Sprintf("/feedback/booking-review/%d", reviewID), guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodDelete, fmt.Sprintf("/feedback/booking-review/%d", reviewID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestContactMessages(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")

	w := f.do(http.MethodPost, "/feedback/contact", "", gin.H{
		"name":    "Nadia",
		"email":   "nadia@example.com",
		"subject": "Airport pickup",
		"message": "Do you offer pickup from the airport?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	contact := decode(t, w)["contact"].(map[string]interface{})
	id := uint(contact["id"].(float64))
	assert.Equal(t, false, contact["read"])

	w = f.do(http.MethodPost, "/feedback/contact", "", gin.H{"name": "Nadia", "email": "not-an-email", "subject": "x", "message": "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodGet, "/feedback/contact", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = f.do(http.MethodGet, "/feedback/contact", guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodGet, "/feedback/contact?unread=true", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode(t, w)["messages"], 1)

	w = f.do(http.MethodPatch, fmt.Sprintf("/feedback/contact/read/%d", id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode(t, w)["contact"].(map[string]interface{})["read"])

	w = f.do(http.MethodGet, "/feedback/contact?unread=true", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["messages"])

	w = f.do(http.MethodPatch, "/feedback/contact/read/999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHousekeepingRoutes(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")
	roomID := f.createRoom(adminToken, "301", 3000)

	w := f.do(http.MethodGet, "/housekeeping/all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = f.do(http.MethodGet, "/housekeeping/all", guest, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodPost, "/housekeeping/create", guest, gin.H{"room_id": roomID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/housekeeping/create", adminToken, gin.H{"room_id": roomID, "assigned_to": "Salma"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decode(t, w)["task"].(map[string]interface{})
	id := uint(task["id"].(float64))
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "Salma", task["assigned_to"])

	w = f.do(http.MethodPost, "/housekeeping/create", adminToken, gin.H{"room_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, fmt.Sprintf("/housekeeping/all?room_id=%d", roomID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode(t, w)["tasks"], 1)
	w = f.do(http.MethodGet, "/housekeeping/all?room_id=abc", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPatch, fmt.Sprintf("/housekeeping/update/%d", id), adminToken, gin.H{"notes": "Change towels"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Change towels", decode(t, w)["task"].(map[string]interface{})["notes"])

	w = f.do(http.MethodPatch, fmt.Sprintf("/housekeeping/status/%d", id), adminToken, gin.H{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = f.do(http.MethodPatch, fmt.Sprintf("/housekeeping/status/%d", id), adminToken, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	done := decode(t, w)["task"].(map[string]interface{})
	assert.Equal(t, "completed", done["status"])
	assert.NotNil(t, done["completed_at"])

	w = f.do(http.MethodGet, fmt.Sprintf("/housekeeping/%d", id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodDelete, fmt.Sprintf("/housekeeping/delete/%d", id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = f.do(http.MethodGet, fmt.Sprintf("/housekeeping/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiscoverRoutes(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")

	w := f.do(http.MethodGet, "/discover/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode(t, w)["places"])

	place := gin.H{
		"title":       "Patenga Beach",
		"category":    "beach",
		"location":    "Patenga, Chattogram",
		"distance_km": 14.5,
		"images":      []string{"patenga.jpg"},
	}
	w = f.do(http.MethodPost, "/discover/create", "", place)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = f.do(http.MethodPost, "/discover/create", guest, place)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/discover/create", adminToken, place)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := uint(decode(t, w)["place"].(map[string]interface{})["id"].(float64))

	w = f.do(http.MethodGet, fmt.Sprintf("/discover/%d", id), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)["place"].(map[string]interface{})
	assert.Equal(t, "Patenga Beach", got["title"])
	assert.Equal(t, []interface{}{"patenga.jpg"}, got["images"])

	w = f.do(http.MethodGet, "/discover/all?category=museum", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["places"])

	w = f.do(http.MethodPatch, fmt.Sprintf("/discover/update/%d", id), guest, gin.H{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = f.do(http.MethodPatch, fmt.Sprintf("/discover/update/%d", id), adminToken, gin.H{"title": "Patenga Sea Beach"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Patenga Sea Beach", decode(t, w)["place"].(map[string]interface{})["title"])

	w = f.do(http.MethodGet, "/discover/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodDelete, fmt.Sprintf("/discover/delete/%d", id), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = f.do(http.MethodGet, fmt.Sprintf("/discover/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlockedUserLosesAccessToken(t *testing.T) {
	f := newFixture(t)
	adminToken := f.adminToken()
	guest := f.signup("Guest", "01811111111")
	other := f.signup("Other", "01922222222")

	w := f.do(http.MethodGet, "/auth/me", guest, nil)
	require.Equal(t, http.StatusOK, w.Code)
	guestID := uint(decode(t, w)["user"].(map[string]interface{})["id"].(float64))
	w = f.do(http.MethodGet, "/auth/me", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	otherID := uint(decode(t, w)["user"].(map[string]interface{})["id"].(float64))

	w = f.do(http.MethodPatch, fmt.Sprintf("/user/block/%d", guestID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = f.do(http.MethodGet, "/auth/me", guest, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")

	w = f.do(http.MethodDelete, fmt.Sprintf("/user/delete/%d", otherID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = f.do(http.MethodGet, "/booking/my", other, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodGet, "/auth/me", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
