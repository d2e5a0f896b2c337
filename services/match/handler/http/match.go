package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/utils"
	"github.com/rizaldy/angkut/services/match"
	"github.com/rizaldy/angkut/services/trip"
)

// MatchHandler handles HTTP requests for driver acceptance
type MatchHandler struct {
	matchUC match.MatchUseCase
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// AcceptTrip handles a driver's attempt to claim a trip
func (h *MatchHandler) AcceptTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing driver identity")
	}

	accepted, err := h.matchUC.AcceptTrip(c.Request().Context(), tripID, driverID)
	switch {
	case errors.Is(err, trip.ErrNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, trip.ErrAlreadyTaken):
		return utils.ConflictResponse(c, err.Error())
	case err != nil:
		logger.Error("Failed to accept trip",
			logger.String("trip_id", tripID.String()),
			logger.String("driver_id", driverID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to accept trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip accepted", accepted)
}
