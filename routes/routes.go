package routes

import (
	"net/http"
	"time"

	"parksmart/handlers"
	"parksmart/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCORS applies the CORS policy for mobile clients.
func RegisterCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterSpotRoutes registers spot discovery endpoints.
func RegisterSpotRoutes(r *gin.Engine, h *handlers.ParkingHandler) {
	api := r.Group("/api/spots")
	{
		api.GET("/nearby", h.ListNearbySpots)
		api.GET("/nearest", h.NearestSpot)
		api.GET("/id/:id", h.GetSpot)
		api.POST("", h.AddSpot)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.ParkingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBooking)
		api.POST("/:id/finish", h.FinishBooking)
		api.POST("/:id/cancel", h.CancelBooking)
	}

	users := r.Group("/api/users")
	{
		users.GET("/:id/bookings", h.UserBookings)
		users.GET("/:id/bookings/active", h.ActiveBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, monitor *utils.HealthMonitor) {
	r.GET("/health", func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}
