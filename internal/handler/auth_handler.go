package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/dto"
	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

// AuthHandler exposes session and identity endpoints.
type AuthHandler struct {
	auth      service.AuthService
	progress  service.ProgressService
	chat      service.ChatService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth service.AuthService, progress service.ProgressService, chat service.ChatService, validator *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		progress:  progress,
		chat:      chat,
		validator: validator,
		logger:    logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires auth routes.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/auth/login", h.login)
	router.Post("/auth/signup", h.signup)
	router.Post("/auth/logout", h.logout)
	router.Get("/profile", h.profile)
	router.Patch("/profile", h.updateProfile)
	router.Post("/premium/checkout", h.checkout)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "a valid email is required")
	}

	session, err := h.auth.Login(c.Context(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("login failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to start session")
	}

	return utils.SendSuccess(c, "session started", session)
}

func (h *AuthHandler) signup(c *fiber.Ctx) error {
	var payload dto.SignupRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "name and a valid email are required")
	}

	session, err := h.auth.Signup(c.Context(), payload)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("signup failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to register")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "learner registered", session)
}

// logout clears the active session and releases session-scoped state: media
// replacements and the chat transcript. Durable progress stays untouched.
func (h *AuthHandler) logout(c *fiber.Ctx) error {
	learnerKey, err := h.auth.Logout(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("logout failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to end session")
	}

	h.progress.EndSession(learnerKey)
	if err := h.chat.ClearHistory(c.Context(), learnerKey); err != nil {
		requestLogger(h.logger, c).Warn().Err(err).Msg("failed to clear chat transcript on logout")
	}

	return utils.SendSuccess(c, "session ended", nil)
}

func (h *AuthHandler) profile(c *fiber.Ctx) error {
	learner, err := h.auth.ActiveLearner(c.Context(), middleware.LearnerEmail(c))
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			return utils.SendError(c, fiber.StatusUnauthorized, "not logged in")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load profile")
	}

	return utils.SendSuccess(c, "profile retrieved", learner)
}

func (h *AuthHandler) updateProfile(c *fiber.Ctx) error {
	var payload dto.UpdateProfileRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid profile fields")
	}

	learner, err := h.auth.UpdateProfile(c.Context(), middleware.LearnerEmail(c), payload)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			return utils.SendError(c, fiber.StatusUnauthorized, "not logged in")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return utils.SendSuccess(c, "profile updated", learner)
}

func (h *AuthHandler) checkout(c *fiber.Ctx) error {
	var payload dto.CheckoutRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "plan must be monthly or yearly")
	}

	learner, err := h.auth.ActivatePremium(c.Context(), middleware.LearnerEmail(c), payload.Plan)
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			return utils.SendError(c, fiber.StatusUnauthorized, "not logged in")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("checkout failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to activate premium")
	}

	return utils.SendSuccess(c, "premium activated", learner)
}
