package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	RoomIDs    []uint `json:"roomIds" binding:"required,min=1"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Guests     int    `json:"guests" binding:"required,min=1"`
	CouponCode string `json:"couponCode"`
	Notes      string `json:"notes"`
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkIn must be a YYYY-MM-DD date"})
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be a YYYY-MM-DD date"})
		return
	}

	booking, err := h.svc.Bookings.Create(c.Request.Context(), middlewares.CurrentUserID(c), services.BookingInput{
		RoomIDs:    req.RoomIDs,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		CouponCode: req.CouponCode,
		Notes:      req.Notes,
	})
	if err != nil {
		h.respondError(c, "create booking", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetUserBookings - bookings of the logged-in guest
func (h *Handler) GetUserBookings(c *gin.Context) {
	bookings, err := h.svc.Bookings.ListForUser(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		h.respondError(c, "list my bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	booking, err := h.svc.Bookings.GetFor(c.Request.Context(), actor(c), id)
	if err != nil {
		h.respondError(c, "get booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	booking, err := h.svc.Bookings.Cancel(c.Request.Context(), middlewares.CurrentUserID(c), id)
	if err != nil {
		h.respondError(c, "cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled",
		"booking": booking,
	})
}
