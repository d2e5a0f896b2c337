package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/middleware"
	"github.com/rizaldy/angkut/internal/pkg/models"
	"github.com/rizaldy/angkut/services/match"
	httpHandler "github.com/rizaldy/angkut/services/match/handler/http"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUseCase, cfg *models.Config) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/trips/:tripID/accept", h.matchHTTP.AcceptTrip,
		middleware.JWTAuthMiddleware(h.cfg.JWT))
}
