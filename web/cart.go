package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	accessCookie  = "accessToken"
	refreshCookie = "refreshToken"
	cartCookie    = "hotelCart"
	flashCookie   = "flash"

	cartMaxAge    = 7 * 24 * 3600
	sessionMaxAge = 7 * 24 * 3600
)

// Cart is the booking stub kept in the hotelCart cookie.
type Cart struct {
	RoomIDs  []uint `json:"roomIds"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

func (c *Cart) Add(id uint) {
	for _, existing := range c.RoomIDs {
		if existing == id {
			return
		}
	}
	c.RoomIDs = append(c.RoomIDs, id)
	sort.Slice(c.RoomIDs, func(i, j int) bool { return c.RoomIDs[i] < c.RoomIDs[j] })
}

func (c *Cart) Remove(id uint) {
	kept := c.RoomIDs[:0]
	for _, existing := range c.RoomIDs {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	c.RoomIDs = kept
}

func (c *Cart) Empty() bool { return len(c.RoomIDs) == 0 }

func encodeCart(c Cart) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeCart(s string) (Cart, error) {
	var c Cart
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(raw, &c)
	return c, err
}

// readCart returns an empty cart when the cookie is missing or garbled.
func readCart(c *gin.Context) Cart {
	v, err := c.Cookie(cartCookie)
	if err != nil || v == "" {
		return Cart{}
	}
	cart, err := decodeCart(v)
	if err != nil {
		return Cart{}
	}
	return cart
}

func writeCart(c *gin.Context, cart Cart) {
	v, err := encodeCart(cart)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cartCookie, v, cartMaxAge, "/", "", false, false)
}

func clearCart(c *gin.Context) {
	c.SetCookie(cartCookie, "", -1, "/", "", false, false)
}

func setSession(c *gin.Context, access, refresh string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, access, sessionMaxAge, "/", "", secure, true)
	if refresh != "" {
		c.SetCookie(refreshCookie, refresh, sessionMaxAge, "/", "", secure, true)
	}
}

func clearSession(c *gin.Context) {
	c.SetCookie(accessCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
}

// setFlash stores a one-shot notice shown on the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString([]byte(msg)), 60, "/", "", false, true)
}

func popFlash(c *gin.Context) string {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func isEmail(login string) bool {
	return strings.Contains(login, "@")
}
