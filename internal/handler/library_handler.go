package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/catalog"
	"github.com/arkan-dev/eduverse-api/internal/middleware"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/service"
	"github.com/arkan-dev/eduverse-api/internal/utils"
)

// LibraryHandler serves the static catalog extras: internship listings and
// earned certificates.
type LibraryHandler struct {
	auth   service.AuthService
	logger zerolog.Logger
}

// NewLibraryHandler constructs the handler.
func NewLibraryHandler(auth service.AuthService, logger zerolog.Logger) *LibraryHandler {
	return &LibraryHandler{
		auth:   auth,
		logger: logger.With().Str("component", "library_handler").Logger(),
	}
}

// Register wires library routes.
func (h *LibraryHandler) Register(router fiber.Router) {
	router.Get("/internships", h.internships)
	router.Get("/certificates", h.certificates)
	router.Get("/certificates/:certificateId/download", h.downloadCertificate)
}

func (h *LibraryHandler) internships(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "internships retrieved", catalog.Internships())
}

func (h *LibraryHandler) certificates(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "certificates retrieved", catalog.Certificates())
}

// downloadCertificate hands back the render payload for a certificate. The
// learner's display name is stamped in; anonymous sessions download as the
// generic learner.
func (h *LibraryHandler) downloadCertificate(c *fiber.Ctx) error {
	certificate, ok := catalog.CertificateByID(c.Params("certificateId"))
	if !ok {
		return utils.SendError(c, fiber.StatusNotFound, "certificate not found")
	}

	name := "Learner"
	if email := middleware.LearnerEmail(c); email != "" {
		learner, err := h.auth.ActiveLearner(c.Context(), email)
		if err != nil && !errors.Is(err, service.ErrNotLoggedIn) {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to resolve learner for certificate")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to render certificate")
		}
		if err == nil && learner.Name != "" {
			name = learner.Name
		}
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", certificate.ID+".json"))

	return utils.SendSuccess(c, "certificate rendered", models.CertificateRender{
		Title:       certificate.Title,
		IssueDate:   certificate.IssueDate,
		LearnerName: name,
	})
}
