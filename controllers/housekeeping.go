package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateHousekeeping(c *gin.Context) {
	var input services.HousekeepingInput
	if !bindJSON(c, &input) {
		return
	}
	task, err := h.svc.Housekeeping.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create housekeeping task", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) ListHousekeeping(c *gin.Context) {
	roomID, ok := queryUint(c, "room_id")
	if !ok {
		return
	}
	tasks, err := h.svc.Housekeeping.List(c.Request.Context(), services.HousekeepingFilter{
		Status: c.Query("status"),
		RoomID: roomID,
	})
	if err != nil {
		h.respondError(c, "list housekeeping tasks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) GetHousekeeping(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	task, err := h.svc.Housekeeping.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get housekeeping task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) UpdateHousekeeping(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.HousekeepingPatch
	if !bindJSON(c, &patch) {
		return
	}
	task, err := h.svc.Housekeeping.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, "update housekeeping task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) UpdateHousekeepingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		Status models.HousekeepingStatus `json:"status" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	task, err := h.svc.Housekeeping.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, "update housekeeping status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) DeleteHousekeeping(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Housekeeping.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete housekeeping task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
