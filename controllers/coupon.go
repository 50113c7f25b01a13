package controllers

import (
	"net/http"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCoupon(c *gin.Context) {
	var input services.CouponInput
	if !bindJSON(c, &input) {
		return
	}
	coupon, err := h.svc.Coupons.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "create coupon", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coupon": coupon})
}

func (h *Handler) ListCoupons(c *gin.Context) {
	coupons, err := h.svc.Coupons.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "list coupons", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

func (h *Handler) GetCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	coupon, err := h.svc.Coupons.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "get coupon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": coupon})
}

func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.CouponPatch
	if !bindJSON(c, &patch) {
		return
	}
	coupon, err := h.svc.Coupons.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, "update coupon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupon": coupon})
}

func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Coupons.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "delete coupon", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

// ApplyCoupon quotes a discount without redeeming the coupon.
func (h *Handler) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if !bindJSON(c, &input) {
		return
	}
	quote, err := h.svc.Coupons.Apply(c.Request.Context(), input.Code, input.Amount)
	if err != nil {
		h.respondError(c, "apply coupon", err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
