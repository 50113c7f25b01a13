package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateDiscover(c *gin.Context) {
	var input services.DiscoverInput
	if !bindJSON(c, &input) {
		return
	}
	place, err := h.svc.Discover.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create place", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"place": place})
}

func (h *Handler) ListDiscover(c *gin.Context) {
	places, err := h.svc.Discover.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondError(c, "list places", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}

func (h *Handler) GetDiscover(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	place, err := h.svc.Discover.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get place", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": place})
}

func (h *Handler) UpdateDiscover(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.DiscoverPatch
	if !bindJSON(c, &patch) {
		return
	}
	place, err := h.svc.Discover.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, "update place", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"place": place})
}

func (h *Handler) DeleteDiscover(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Discover.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete place", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Place deleted successfully"})
}
