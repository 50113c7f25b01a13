package controllers

import (
	"net/http"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/gin-gonic/gin"
)

// PayBooking runs the mock payment gateway for a guest's booking.
func (h *Handler) PayBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	method := strings.ToLower(strings.TrimSpace(input.Method))
	booking, err := h.svc.Bookings.Pay(c.Request.Context(), middlewares.CurrentUserID(c), id, method)
	if err != nil {
		h.respondError(c, "pay booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Payment successful",
		"payment_ref": booking.PaymentRef,
		"booking":     booking,
	})
}

// BookingReceipt streams the PDF receipt.
func (h *Handler) BookingReceipt(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	booking, pdf, err := h.svc.Bookings.Receipt(c.Request.Context(), actor(c), id)
	if err != nil {
		h.respondError(c, "booking receipt", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="receipt-`+booking.ReferenceCode+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
