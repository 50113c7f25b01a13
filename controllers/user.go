package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

// GetAllUsers - admin list with optional search and role filter
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.svc.Users.List(c.Request.Context(), services.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
	})
	if err != nil {
		h.respondError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.svc.Users.GetFor(c.Request.Context(), actor(c), id)
	if err != nil {
		h.respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.UserPatch
	if !bindJSON(c, &patch) {
		return
	}
	user, err := h.svc.Users.Update(c.Request.Context(), actor(c), id, patch)
	if err != nil {
		h.respondError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// BlockUser - toggle blocked flag
func (h *Handler) BlockUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.svc.Users.ToggleBlock(c.Request.Context(), actor(c), id)
	if err != nil {
		h.respondError(c, "block user", err)
		return
	}
	status := "unblocked"
	if user.Blocked {
		status = "blocked"
	}
	c.JSON(http.StatusOK, gin.H{"message": "User " + status + " successfully", "user": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Users.Delete(c.Request.Context(), actor(c), id); err != nil {
		h.respondError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
