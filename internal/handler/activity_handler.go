package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

const maxActivityWindow = 90

// ActivityHandler serves the study-time ledger.
type ActivityHandler struct {
	activity service.ActivityService
	logger   zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(activity service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		logger:   logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires activity routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/activity", h.window)
}

func (h *ActivityHandler) window(c *fiber.Ctx) error {
	days, err := parseQueryInt(c, "days")
	if err != nil || days < 0 || days > maxActivityWindow {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid days")
	}
	if days == 0 {
		days = 7
	}

	series, err := h.activity.LastNDays(c.Context(), middleware.LearnerKey(c), days)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load activity window")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load activity")
	}

	return utils.SendSuccess(c, "activity retrieved", series)
}
