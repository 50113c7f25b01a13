package controllers

import (
	"net/http"
	"strconv"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateRoom(c *gin.Context) {
	var input services.RoomInput
	if !bindJSON(c, &input) {
		return
	}
	room, err := h.svc.Rooms.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create room", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	var f services.RoomFilter
	f.Type = c.Query("type")
	f.Status = c.Query("status")
	for key, dst := range map[string]*float64{"min_price": &f.MinPrice, "max_price": &f.MaxPrice} {
		if raw := c.Query(key); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key})
				return
			}
			*dst = v
		}
	}
	guests, ok := queryUint(c, "guests")
	if !ok {
		return
	}
	f.Guests = int(guests)

	rooms, err := h.svc.Rooms.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, "list rooms", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := h.svc.Rooms.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get room", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// SearchRooms lists rooms free for the whole stay.
func (h *Handler) SearchRooms(c *gin.Context) {
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be a YYYY-MM-DD date"})
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be a YYYY-MM-DD date"})
		return
	}
	guests, ok := queryUint(c, "guests")
	if !ok {
		return
	}

	rooms, err := h.svc.Rooms.Search(c.Request.Context(), services.AvailabilityQuery{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   int(guests),
		Type:     c.Query("type"),
	})
	if err != nil {
		h.respondError(c, "search rooms", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rooms":     rooms,
		"check_in":  checkIn.Format(utils.DateLayout),
		"check_out": checkOut.Format(utils.DateLayout),
		"nights":    utils.Nights(checkIn, checkOut),
	})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.RoomPatch
	if !bindJSON(c, &patch) {
		return
	}
	room, err := h.svc.Rooms.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, "update room", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		Status models.RoomStatus `json:"status" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	room, err := h.svc.Rooms.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		h.respondError(c, "update room status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Rooms.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete room", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
