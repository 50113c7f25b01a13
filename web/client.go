package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func isStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// APIClient calls the hotel REST API on behalf of the web pages.
type APIClient struct {
	http *resty.Client
	log  *zap.Logger
}

func NewAPIClient(baseURL string, log *zap.Logger) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &APIClient{http: client, log: log}
}

func (c *APIClient) do(ctx context.Context, method, path, token string, body, result interface{}, query map[string]string) error {
	var failure struct {
		Error string `json:"error"`
	}
	req := c.http.R().SetContext(ctx).SetError(&failure)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Error("api call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

// Public endpoints

func (c *APIClient) Rooms(ctx context.Context) ([]models.Room, error) {
	var out struct {
		Rooms []models.Room `json:"rooms"`
	}
	err := c.do(ctx, http.MethodGet, "/room/all", "", nil, &out, nil)
	return out.Rooms, err
}

func (c *APIClient) SearchRooms(ctx context.Context, checkIn, checkOut string, guests int) ([]models.Room, error) {
	var out struct {
		Rooms []models.Room `json:"rooms"`
	}
	q := map[string]string{"check_in": checkIn, "check_out": checkOut}
	if guests > 0 {
		q["guests"] = strconv.Itoa(guests)
	}
	err := c.do(ctx, http.MethodGet, "/room/search", "", nil, &out, q)
	return out.Rooms, err
}

func (c *APIClient) Room(ctx context.Context, id uint) (*models.Room, error) {
	var out struct {
		Room models.Room `json:"room"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/room/%d", id), "", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.Room, nil
}

func (c *APIClient) Reviews(ctx context.Context, roomID uint) ([]services.Review, error) {
	var out struct {
		Reviews []services.Review `json:"reviews"`
	}
	q := map[string]string{"room_id": strconv.FormatUint(uint64(roomID), 10)}
	err := c.do(ctx, http.MethodGet, "/feedback/booking-review", "", nil, &out, q)
	return out.Reviews, err
}

func (c *APIClient) Places(ctx context.Context) ([]models.Discover, error) {
	var out struct {
		Places []models.Discover `json:"places"`
	}
	err := c.do(ctx, http.MethodGet, "/discover/all", "", nil, &out, nil)
	return out.Places, err
}

func (c *APIClient) Contact(ctx context.Context, in services.ContactInput) error {
	return c.do(ctx, http.MethodPost, "/feedback/contact", "", in, nil, nil)
}

// Auth

func (c *APIClient) Signup(ctx context.Context, in services.SignupInput) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", "", in, nil, nil)
}

// Signin accepts a phone number or an email address as login.
func (c *APIClient) Signin(ctx context.Context, login, password string) (*services.Session, error) {
	body := map[string]string{"password": password}
	if isEmail(login) {
		body["email"] = login
	} else {
		body["phone"] = login
	}
	var out services.Session
	if err := c.do(ctx, http.MethodPost, "/auth/signin", "", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/refresh", "", map[string]string{"refreshToken": refreshToken}, &out, nil)
	return out.AccessToken, err
}

func (c *APIClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil, nil)
}

func (c *APIClient) Me(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// AdminVerify fails with a 403 APIError for non-admin tokens.
func (c *APIClient) AdminVerify(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/auth/admin-verify", token, nil, nil, nil)
}

// Bookings

type bookingRequest struct {
	RoomIDs    []uint `json:"roomIds"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	CouponCode string `json:"couponCode,omitempty"`
}

func (c *APIClient) CreateBooking(ctx context.Context, token string, cart Cart, couponCode string) (*models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	body := bookingRequest{
		RoomIDs:    cart.RoomIDs,
		CheckIn:    cart.CheckIn,
		CheckOut:   cart.CheckOut,
		Guests:     cart.Guests,
		CouponCode: couponCode,
	}
	if err := c.do(ctx, http.MethodPost, "/booking/create", token, body, &out, nil); err != nil {
		return nil, err
	}
	return &out.Booking, nil
}

func (c *APIClient) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out struct {
		Bookings []models.Booking `json:"bookings"`
	}
	err := c.do(ctx, http.MethodGet, "/booking/my", token, nil, &out, nil)
	return out.Bookings, err
}

func (c *APIClient) CancelBooking(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/booking/cancel/%d", id), token, nil, nil, nil)
}

func (c *APIClient) PayBooking(ctx context.Context, token string, id uint, method string) (string, error) {
	var out struct {
		PaymentRef string `json:"payment_ref"`
	}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/booking/pay/%d", id), token, map[string]string{"method": method}, &out, nil)
	return out.PaymentRef, err
}

// Receipt downloads the PDF receipt of a booking.
func (c *APIClient) Receipt(ctx context.Context, token string, id uint) ([]byte, error) {
	var failure struct {
		Error string `json:"error"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&failure).
		SetHeader("Accept", "application/pdf").
		Get(fmt.Sprintf("/booking/receipt/%d", id))
	if err != nil {
		return nil, fmt.Errorf("download receipt: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: failure.Error}
	}
	return resp.Body(), nil
}

func (c *APIClient) ApplyCoupon(ctx context.Context, token, code string, amount float64) (*services.CouponQuote, error) {
	var out services.CouponQuote
	body := map[string]interface{}{"code": code, "amount": amount}
	if err := c.do(ctx, http.MethodPost, "/coupon/apply", token, body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Admin

func (c *APIClient) Stats(ctx context.Context, token string) (*services.Stats, error) {
	var out struct {
		Stats services.Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

func (c *APIClient) Revenue(ctx context.Context, token string, days int) ([]services.DailyRevenue, error) {
	var out struct {
		Data []services.DailyRevenue `json:"data"`
	}
	q := map[string]string{"days": strconv.Itoa(days)}
	err := c.do(ctx, http.MethodGet, "/admin/revenue", token, nil, &out, q)
	return out.Data, err
}
