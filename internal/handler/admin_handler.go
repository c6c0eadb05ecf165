package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"barbershop-booking-api/internal/model"
)

// AdminAppointments returns every appointment ordered by date and time,
// plus the per-status counters the admin panel header shows.
func (h *Handler) AdminAppointments(c *gin.Context) {
	apts := h.store.Appointments()

	// "2006-01-02 15:04" keys sort correctly as strings
	sort.SliceStable(apts, func(i, j int) bool {
		return apts[i].Date+" "+apts[i].Time < apts[j].Date+" "+apts[j].Time
	})

	c.JSON(http.StatusOK, gin.H{
		"appointments": apts,
		"stats": gin.H{
			"confirmed": countByStatus(apts, model.StatusConfirmed),
			"completed": countByStatus(apts, model.StatusCompleted),
			"cancelled": countByStatus(apts, model.StatusCancelled),
		},
	})
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	h.store.CompleteAppointment(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	h.store.DeleteAppointment(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

type rescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *Handler) RescheduleAppointment(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time required"})
		return
	}
	h.store.RescheduleAppointment(c.Request.Context(), c.Param("id"), req.Date, req.Time)
	c.Status(http.StatusNoContent)
}
