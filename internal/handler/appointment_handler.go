package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop-booking-api/internal/catalog"
	"barbershop-booking-api/internal/middleware"
	"barbershop-booking-api/internal/model"
	"barbershop-booking-api/internal/store"
)

type createAppointmentRequest struct {
	Date    string  `json:"date" binding:"required"`
	Time    string  `json:"time" binding:"required"`
	Barber  string  `json:"barber" binding:"required"`
	Service string  `json:"service" binding:"required"`
	Price   float64 `json:"price"`
	Status  string  `json:"status"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, time, barber and service required"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}
	if req.Status == "" {
		req.Status = model.StatusConfirmed
	}

	apt := h.store.CreateAppointment(c.Request.Context(), store.AppointmentInput{
		Date:    req.Date,
		Time:    req.Time,
		Barber:  req.Barber,
		Service: req.Service,
		Price:   req.Price,
		Status:  req.Status,
	})
	if apt == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": apt})
}

// MyAppointments lists the signed-in user's appointments, optionally
// filtered by ?status=, with the per-status summary the list screen shows.
func (h *Handler) MyAppointments(c *gin.Context) {
	u := middleware.CurrentUser(c)
	apts := h.store.AppointmentsForUser(u.ID)

	summary := gin.H{
		"total":     len(apts),
		"confirmed": countByStatus(apts, model.StatusConfirmed),
		"completed": countByStatus(apts, model.StatusCompleted),
		"cancelled": countByStatus(apts, model.StatusCancelled),
	}

	if status := c.Query("status"); status != "" {
		filtered := apts[:0:0]
		for _, a := range apts {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		apts = filtered
	}
	if apts == nil {
		apts = []model.Appointment{}
	}

	c.JSON(http.StatusOK, gin.H{"appointments": apts, "summary": summary})
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	// unknown ids are a silent no-op
	h.store.CancelAppointment(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func countByStatus(apts []model.Appointment, status string) int {
	n := 0
	for _, a := range apts {
		if a.Status == status {
			n++
		}
	}
	return n
}

// ----- catalog -----

func (h *Handler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services()})
}

func (h *Handler) Barbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"barbers": catalog.Barbers()})
}

func (h *Handler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": catalog.Slots()})
}
