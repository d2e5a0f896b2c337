package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/middleware"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/trip"
	httpHandler "github.com/rizaldy/angkut/services/trip/handler/http"
)

// Handler combines all handlers for the trip service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trip.TripUseCase, cfg *models.Config) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/v1/trips")

	trips.POST("", h.tripHTTP.CreateTrip)
	trips.GET("/:tripID", h.tripHTTP.GetTrip)
	trips.GET("/:tripID/activities", h.tripHTTP.ListActivities)
	trips.POST("/:tripID/cancel", h.tripHTTP.CancelTrip)

	// Driver transitions require a JWT identity
	trips.POST("/:tripID/status", h.tripHTTP.AdvanceTrip, middleware.JWTAuthMiddleware(h.cfg.JWT))
}
