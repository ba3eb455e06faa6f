package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parksmart/models"
	"parksmart/services/parking"
	"parksmart/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ParkingHandler exposes the parking service over HTTP.
type ParkingHandler struct {
	Svc           parking.ParkingService
	DefaultRadius float64 // meters
}

// NewParkingHandler creates a new ParkingHandler.
func NewParkingHandler(svc parking.ParkingService, defaultRadiusM float64) *ParkingHandler {
	if defaultRadiusM <= 0 {
		defaultRadiusM = 5000
	}
	return &ParkingHandler{Svc: svc, DefaultRadius: defaultRadiusM}
}

// ListNearbySpots returns spots within the search radius of the caller.
func (h *ParkingHandler) ListNearbySpots(c *gin.Context) {
	logger := getLogger(c)

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "lat must be a number")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "lng must be a number")
		return
	}
	radius := h.DefaultRadius
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid request", "radius must be a positive number")
			return
		}
	}

	spots, err := h.Svc.ListNearby(c.Request.Context(), c.Query("userId"), lat, lng, radius)
	if err != nil {
		logger.Error("Failed to list nearby spots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list nearby spots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// GetSpot returns details for a specific spot.
func (h *ParkingHandler) GetSpot(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	spot, err := h.Svc.GetSpot(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch spot", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch spot", err.Error())
		return
	}
	if spot == nil {
		utils.JSONError(c, http.StatusNotFound, "spot not found", "")
		return
	}
	c.JSON(http.StatusOK, spot)
}

// AddSpot registers a new parking spot.
func (h *ParkingHandler) AddSpot(c *gin.Context) {
	logger := getLogger(c)

	var spot models.ParkingSpot
	if err := c.ShouldBindJSON(&spot); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	id, err := h.Svc.AddSpot(c.Request.Context(), &spot)
	if err != nil {
		var repoErr parking.RepositoryError
		if errors.As(err, &repoErr) {
			logger.Error("Failed to add spot", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to add spot", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid spot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// NearestSpot picks the closest available spot from the user's cached nearby set.
func (h *ParkingHandler) NearestSpot(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "userId is required")
		return
	}

	spot, err := h.Svc.NearestAvailable(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve nearest spot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve nearest spot", err.Error())
		return
	}
	if spot == nil {
		utils.JSONError(c, http.StatusNotFound, "no available spot nearby", "")
		return
	}
	c.JSON(http.StatusOK, spot)
}

// CreateBooking reserves a spot for a user.
func (h *ParkingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		UserID string `json:"userId" binding:"required"`
		SpotID string `json:"spotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	booking, err := h.Svc.Book(c.Request.Context(), input.UserID, input.SpotID)
	if err != nil {
		respondBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// FinishBooking completes an active booking and bills the elapsed time.
func (h *ParkingHandler) FinishBooking(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	booking, err := h.Svc.Finish(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a booking without billing.
func (h *ParkingHandler) CancelBooking(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	booking, err := h.Svc.Cancel(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UserBookings returns a user's booking history.
func (h *ParkingHandler) UserBookings(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("id")

	bookings, err := h.Svc.UserBookings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ActiveBooking returns the user's cached active booking.
func (h *ParkingHandler) ActiveBooking(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("id")

	booking, err := h.Svc.ActiveBooking(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to fetch active booking", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch active booking", err.Error())
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "no active booking", "")
		return
	}
	c.JSON(http.StatusOK, booking)
}

// respondBookingError maps the service error taxonomy to HTTP statuses.
func respondBookingError(c *gin.Context, logger *zap.Logger, err error) {
	var unavailable parking.SpotUnavailableError
	var notFound parking.BookingNotFoundError
	var invalidState parking.InvalidStateError

	switch {
	case errors.As(err, &unavailable):
		utils.JSONError(c, http.StatusConflict, "spot is not available", err.Error())
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case errors.As(err, &invalidState):
		utils.JSONError(c, http.StatusConflict, "booking is not active", err.Error())
	default:
		logger.Error("Booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
