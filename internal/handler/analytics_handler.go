package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

// AnalyticsHandler serves the learning analytics overview.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	auth      service.AuthService
	logger    zerolog.Logger
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(analytics service.AnalyticsService, auth service.AuthService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		auth:      auth,
		logger:    logger.With().Str("component", "analytics_handler").Logger(),
	}
}

// Register wires analytics routes.
func (h *AnalyticsHandler) Register(router fiber.Router) {
	router.Get("/analytics", h.overview)
}

func (h *AnalyticsHandler) overview(c *fiber.Ctx) error {
	premium := false
	if email := middleware.LearnerEmail(c); email != "" {
		if learner, err := h.auth.ActiveLearner(c.Context(), email); err == nil {
			premium = learner.IsPremium
		}
	}

	overview, err := h.analytics.Overview(c.Context(), middleware.LearnerKey(c), premium)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build analytics overview")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load analytics")
	}

	return utils.SendSuccess(c, "analytics retrieved", overview)
}
