package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/trip"
)

// TripHandler handles HTTP requests for trip lifecycle operations
type TripHandler struct {
	tripUC trip.TripUseCase
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trip.TripUseCase) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles a rider's trip submission
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req trip.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RiderID == uuid.Nil {
		return utils.BadRequestResponse(c, "Rider ID is required")
	}

	created, err := h.tripUC.RequestTrip(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create trip",
			logger.String("rider_id", req.RiderID.String()),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip requested", created)
}

// GetTrip returns a trip with its relations
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	t, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if errors.Is(err, trip.ErrNotFound) {
		return utils.NotFoundResponse(c, "Trip not found")
	}
	if err != nil {
		logger.Error("Failed to load trip",
			logger.String("trip_id", tripID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to load trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip", t)
}

type advanceTripRequest struct {
	Status     models.TripStatus `json:"status"`
	PaidAmount int64             `json:"paid_amount"`
}

// AdvanceTrip moves a trip to the requested status on the driver's behalf
func (h *TripHandler) AdvanceTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing driver identity")
	}

	var req advanceTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	t, err := h.tripUC.AdvanceTrip(c.Request().Context(), tripID, req.Status, driverID, req.PaidAmount)
	if err != nil {
		return tripErrorResponse(c, tripID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated", t)
}

// CancelTrip cancels a trip on the rider's behalf
func (h *TripHandler) CancelTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	t, err := h.tripUC.CancelByRider(c.Request().Context(), tripID)
	if err != nil {
		return tripErrorResponse(c, tripID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip canceled", t)
}

// ListActivities returns a trip's audit trail
func (h *TripHandler) ListActivities(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	records, err := h.tripUC.ListActivities(c.Request().Context(), tripID)
	if err != nil {
		logger.Error("Failed to list trip activities",
			logger.String("trip_id", tripID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list trip activities")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip activities", records)
}

func tripErrorResponse(c echo.Context, tripID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, trip.ErrNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, trip.ErrInvalidTransition):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, trip.ErrAlreadyTaken):
		return utils.ConflictResponse(c, err.Error())
	}
	logger.Error("Trip operation failed",
		logger.String("trip_id", tripID.String()),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "Trip operation failed")
}
