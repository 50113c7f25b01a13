package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateReview(c *gin.Context) {
	var input services.ReviewInput
	if !bindJSON(c, &input) {
		return
	}
	review, err := h.svc.Feedback.CreateReview(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		h.respondError(c, "create review", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) ListReviews(c *gin.Context) {
	roomID, ok := queryUint(c, "room_id")
	if !ok {
		return
	}
	reviews, err := h.svc.Feedback.ListReviews(c.Request.Context(), roomID)
	if err != nil {
		h.respondError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Feedback.DeleteReview(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// CreateContact takes a message from the public contact form.
func (h *Handler) CreateContact(c *gin.Context) {
	var input services.ContactInput
	if !bindJSON(c, &input) {
		return
	}
	msg, err := h.svc.Feedback.CreateContact(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create contact message", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you, we will get back to you soon",
		"contact": msg,
	})
}

func (h *Handler) ListContacts(c *gin.Context) {
	msgs, err := h.svc.Feedback.ListContacts(c.Request.Context(), c.Query("unread") == "true")
	if err != nil {
		h.respondError(c, "list contact messages", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) MarkContactRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	msg, err := h.svc.Feedback.MarkContactRead(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "mark contact read", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": msg})
}
