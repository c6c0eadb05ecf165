package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop-booking-api/internal/middleware"
	"barbershop-booking-api/internal/model"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// profile is the user shape returned by the API; the stored password never
// leaves the store through a response.
type profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
}

func toProfile(u *model.User) profile {
	return profile{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, IsAdmin: u.IsAdmin}
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields required"})
		return
	}

	if !h.store.Register(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password) {
		// dup email or a failed save; don't distinguish for the caller
		c.JSON(http.StatusConflict, gin.H{"error": "registration failed"})
		return
	}

	u := h.store.Current()
	c.JSON(http.StatusCreated, gin.H{"user": toProfile(u)})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	if !h.store.Authenticate(c.Request.Context(), req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	u := h.store.Current()
	c.JSON(http.StatusOK, gin.H{"user": toProfile(u)})
}

func (h *Handler) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": toProfile(u)})
}
