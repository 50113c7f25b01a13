package controllers

import (
	"net/http"
	"strings"

	"github.com/EtherSphere01/Hotel-Amin-International-sub001/middlewares"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/models"
	"github.com/EtherSphere01/Hotel-Amin-International-sub001/services"
	"github.com/gin-gonic/gin"
)

// Signup handles new guest registration
func (h *Handler) Signup(c *gin.Context) {
	var input services.SignupInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.svc.Auth.Signup(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "signup", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Signin accepts either a phone number or an email address as the login.
func (h *Handler) Signin(c *gin.Context) {
	var input struct {
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	login := strings.TrimSpace(input.Phone)
	if login == "" {
		login = strings.TrimSpace(input.Email)
	}
	if login == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone or email is required"})
		return
	}

	session, err := h.svc.Auth.Signin(c.Request.Context(), login, input.Password)
	if err != nil {
		h.respondError(c, "signin", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if !bindJSON(c, &input) {
		return
	}
	access, err := h.svc.Auth.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		h.respondError(c, "refresh", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}

func (h *Handler) Logout(c *gin.Context) {
	claims := middlewares.CurrentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.svc.Auth.Logout(c.Request.Context(), claims); err != nil {
		h.respondError(c, "logout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.svc.Users.Get(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		h.respondError(c, "me", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AdminVerify backs the web client's admin gate.
func (h *Handler) AdminVerify(c *gin.Context) {
	role := middlewares.CurrentRole(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not an admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "valid token",
		"role":    role,
	})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var input struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if !bindJSON(c, &input) {
		return
	}
	if err := h.svc.Users.ChangePassword(c.Request.Context(), middlewares.CurrentUserID(c), input.OldPassword, input.NewPassword); err != nil {
		h.respondError(c, "change password", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
