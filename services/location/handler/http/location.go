package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/location"
)

// LocationHandler handles HTTP requests for driver location operations
type LocationHandler struct {
	locationUC location.LocationUseCase
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUseCase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

type reportLocationRequest struct {
	DriverID string          `json:"driver_id"`
	Location models.Location `json:"location"`
}

// ReportLocation handles a driver position sample
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req reportLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.locationUC.ReportLocation(c.Request().Context(), req.DriverID, req.Location); err != nil {
		logger.Error("Failed to report driver location",
			logger.String("driver_id", req.DriverID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// SetAvailability handles a driver availability change
func (h *LocationHandler) SetAvailability(c echo.Context) error {
	var req models.AvailabilityUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.locationUC.SetAvailability(c.Request().Context(), req.DriverID, req.Status); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", req)
}

// NearbyDrivers returns the idle drivers closest to a point
func (h *LocationHandler) NearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km")
		}
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
	}

	center := utils.GeoPoint{Latitude: lat, Longitude: lon}
	drivers, err := h.locationUC.NearestAvailable(c.Request().Context(), center, radiusKm, limit)
	if err != nil {
		logger.Error("Failed to query nearby drivers", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", drivers)
}
