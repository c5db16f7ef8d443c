package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/dto"
	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

// ChatHandler exposes the study-buddy conversation.
type ChatHandler struct {
	chat      service.ChatService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(chat service.ChatService, validator *validator.Validate, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:      chat,
		validator: validator,
		logger:    logger.With().Str("component", "chat_handler").Logger(),
	}
}

// Register wires chat routes.
func (h *ChatHandler) Register(router fiber.Router) {
	router.Post("/chat", h.send)
	router.Get("/chat/history", h.history)
	router.Delete("/chat/history", h.clear)
}

func (h *ChatHandler) send(c *fiber.Ctx) error {
	var payload dto.ChatRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "a message of at most 2000 characters is required")
	}

	reply, err := h.chat.Send(c.Context(), middleware.LearnerKey(c), payload.Message)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("chat turn failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to process message")
	}

	return utils.SendSuccess(c, "reply generated", reply)
}

func (h *ChatHandler) history(c *fiber.Ctx) error {
	messages, err := h.chat.History(c.Context(), middleware.LearnerKey(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load transcript")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load history")
	}

	return utils.SendSuccess(c, "history retrieved", messages)
}

func (h *ChatHandler) clear(c *fiber.Ctx) error {
	if err := h.chat.ClearHistory(c.Context(), middleware.LearnerKey(c)); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to clear transcript")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to clear history")
	}

	return utils.SendSuccess(c, "history cleared", nil)
}
