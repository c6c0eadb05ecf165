package handler

import (
	"github.com/gin-gonic/gin"

	"barbershop-booking-api/internal/middleware"
	"barbershop-booking-api/internal/store"
)

type Handler struct {
	store *store.Store
}

func New(st *store.Store) *Handler {
	return &Handler{store: st}
}

// Router mounts one route group per screen of the app: auth, catalog,
// booking, my-appointments, profile and the admin panel.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/catalog/services", h.Services)
	api.GET("/catalog/barbers", h.Barbers)
	api.GET("/catalog/slots", h.Slots)

	authed := api.Group("", middleware.RequireSession(h.store))
	authed.POST("/auth/logout", h.Logout)
	authed.GET("/me", h.Me)
	authed.GET("/me/appointments", h.MyAppointments)
	authed.POST("/appointments", h.CreateAppointment)
	authed.POST("/appointments/:id/cancel", h.CancelAppointment)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.GET("/appointments", h.AdminAppointments)
	admin.POST("/appointments/:id/complete", h.CompleteAppointment)
	admin.PUT("/appointments/:id/reschedule", h.RescheduleAppointment)
	admin.DELETE("/appointments/:id", h.DeleteAppointment)

	return r
}
