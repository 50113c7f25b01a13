package controllers

import (
	"net/http"
	"time"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// bookingFilter reads the admin booking filters from the query string.
func bookingFilter(c *gin.Context) (services.BookingFilter, bool) {
	f := services.BookingFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	for key, dst := range map[string]**time.Time{"from": &f.From, "to": &f.To} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := utils.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be a YYYY-MM-DD date"})
			return f, false
		}
		*dst = &t
	}
	return f, true
}

// Admin: List all bookings (with optional filters)
func (h *Handler) GetAllBookings(c *gin.Context) {
	f, ok := bookingFilter(c)
	if !ok {
		return
	}
	bookings, err := h.svc.Bookings.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Admin: move a booking through its lifecycle
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	booking, err := h.svc.Bookings.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, "update booking status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated",
		"booking": booking,
	})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Bookings.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// ExportBookings downloads the filtered bookings as a spreadsheet.
func (h *Handler) ExportBookings(c *gin.Context) {
	f, ok := bookingFilter(c)
	if !ok {
		return
	}
	data, err := h.svc.Bookings.Export(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, "export bookings", err)
		return
	}
	name := "bookings-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
