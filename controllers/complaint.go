package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateComplaint(c *gin.Context) {
	var input services.ComplaintInput
	if !bindJSON(c, &input) {
		return
	}
	complaint, err := h.svc.Complaints.Create(c.Request.Context(), middlewares.CurrentUserID(c), input)
	if err != nil {
		h.respondError(c, "create complaint", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

func (h *Handler) GetMyComplaints(c *gin.Context) {
	complaints, err := h.svc.Complaints.ListForUser(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		h.respondError(c, "list my complaints", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) GetComplaint(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	complaint, err := h.svc.Complaints.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		h.respondError(c, "get complaint", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}

func (h *Handler) GetAllComplaints(c *gin.Context) {
	complaints, err := h.svc.Complaints.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, "list complaints", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) RespondComplaint(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input services.ComplaintResponse
	if !bindJSON(c, &input) {
		return
	}
	complaint, err := h.svc.Complaints.Respond(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, "respond complaint", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}

func (h *Handler) DeleteComplaint(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Complaints.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete complaint", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}
