package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/middleware"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/location"
	httpHandler "github.com/rizaldy/angkut/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUseCase, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/v1/drivers")

	authed := drivers.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	authed.POST("/location", h.locationHTTP.ReportLocation)
	authed.PUT("/availability", h.locationHTTP.SetAvailability)

	drivers.GET("/nearby", h.locationHTTP.NearbyDrivers)
}
