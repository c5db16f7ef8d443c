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

// CourseHandler exposes the merged course collection and its mutations.
type CourseHandler struct {
	progress  service.ProgressService
	quiz      service.QuizService
	auth      service.AuthService
	analytics service.AnalyticsService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(progress service.ProgressService, quiz service.QuizService, auth service.AuthService, analytics service.AnalyticsService, validator *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		progress:  progress,
		quiz:      quiz,
		auth:      auth,
		analytics: analytics,
		validator: validator,
		logger:    logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register wires course routes.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("/courses", h.list)
	router.Get("/courses/:courseId", h.get)
	router.Post("/courses/:courseId/lock", h.toggleCourseLock)
	router.Post("/courses/:courseId/progress", h.setProgress)
	router.Post("/courses/:courseId/lessons/:lessonId/complete", h.completeLesson)
	router.Post("/courses/:courseId/lessons/:lessonId/lock", h.toggleLessonLock)
	router.Post("/courses/:courseId/lessons/:lessonId/media", h.replaceMedia)
	router.Post("/courses/:courseId/lessons/:lessonId/quiz", h.submitQuiz)
}

// isPremium resolves the premium flag for the request. Guests and lookup
// failures are simply not premium.
func (h *CourseHandler) isPremium(c *fiber.Ctx) bool {
	email := middleware.LearnerEmail(c)
	if email == "" {
		return false
	}
	learner, err := h.auth.ActiveLearner(c.Context(), email)
	if err != nil {
		return false
	}
	return learner.IsPremium
}

func (h *CourseHandler) list(c *fiber.Ctx) error {
	learnerKey := middleware.LearnerKey(c)
	premium := h.isPremium(c)
	courses, err := h.progress.CoursesFor(c.Context(), learnerKey, premium)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load courses")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load courses")
	}

	return utils.SendSuccess(c, "courses retrieved", dto.NewCourseViews(courses, premium))
}

func (h *CourseHandler) get(c *fiber.Ctx) error {
	learnerKey := middleware.LearnerKey(c)
	premium := h.isPremium(c)
	course, err := h.progress.CourseFor(c.Context(), learnerKey, c.Params("courseId"), premium)
	if err != nil {
		return h.courseError(c, err, "failed to load course")
	}

	return utils.SendSuccess(c, "course retrieved", dto.NewCourseView(course, premium))
}

func (h *CourseHandler) completeLesson(c *fiber.Ctx) error {
	learnerKey := middleware.LearnerKey(c)
	course, err := h.progress.MarkLessonComplete(c.Context(), learnerKey, c.Params("courseId"), c.Params("lessonId"))
	if err != nil {
		return h.courseError(c, err, "failed to complete lesson")
	}

	h.analytics.Invalidate(c.Context(), learnerKey)

	return utils.SendSuccess(c, "lesson completed", dto.NewCourseView(course, h.isPremium(c)))
}

func (h *CourseHandler) toggleLessonLock(c *fiber.Ctx) error {
	learnerKey := middleware.LearnerKey(c)
	course, err := h.progress.ToggleLessonLock(c.Context(), learnerKey, c.Params("courseId"), c.Params("lessonId"))
	if err != nil {
		return h.courseError(c, err, "failed to toggle lesson lock")
	}

	return utils.SendSuccess(c, "lesson lock toggled", dto.NewCourseView(course, h.isPremium(c)))
}

func (h *CourseHandler) toggleCourseLock(c *fiber.Ctx) error {
	learnerKey := middleware.LearnerKey(c)
	course, err := h.progress.ToggleCourseLock(c.Context(), learnerKey, c.Params("courseId"))
	if err != nil {
		return h.courseError(c, err, "failed to toggle course lock")
	}

	return utils.SendSuccess(c, "course lock toggled", dto.NewCourseView(course, h.isPremium(c)))
}

func (h *CourseHandler) setProgress(c *fiber.Ctx) error {
	var payload dto.SetProgressRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "progress must be between 0 and 100")
	}

	learnerKey := middleware.LearnerKey(c)
	course, err := h.progress.SetCourseProgress(c.Context(), learnerKey, c.Params("courseId"), payload.Progress)
	if err != nil {
		return h.courseError(c, err, "failed to set progress")
	}

	h.analytics.Invalidate(c.Context(), learnerKey)

	return utils.SendSuccess(c, "progress updated", dto.NewCourseView(course, h.isPremium(c)))
}

func (h *CourseHandler) replaceMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "a file is required")
	}

	media, err := file.Open()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "failed to read upload")
	}
	defer media.Close()

	learnerKey := middleware.LearnerKey(c)
	courseID, lessonID := c.Params("courseId"), c.Params("lessonId")

	url, err := h.progress.ReplaceLessonMedia(c.Context(), learnerKey, courseID, lessonID, file.Filename, media)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMediaType):
			return utils.SendError(c, fiber.StatusUnsupportedMediaType, "only video files are accepted")
		case errors.Is(err, service.ErrUploaderUnavailable):
			return utils.SendError(c, fiber.StatusServiceUnavailable, "media uploads are not configured")
		default:
			return h.courseError(c, err, "failed to replace media")
		}
	}

	return utils.SendSuccess(c, "lesson media replaced", dto.MediaReplacedResponse{
		CourseID: courseID,
		LessonID: lessonID,
		VideoURL: url,
	})
}

func (h *CourseHandler) submitQuiz(c *fiber.Ctx) error {
	var payload dto.QuizSubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "answers are required")
	}

	score, err := h.quiz.Evaluate(c.Context(), c.Params("courseId"), c.Params("lessonId"), payload.Answers)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "lesson has no quiz")
		}
		return h.courseError(c, err, "failed to evaluate quiz")
	}

	return utils.SendSuccess(c, "quiz evaluated", score)
}

func (h *CourseHandler) courseError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "course not found")
	case errors.Is(err, service.ErrLessonNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "lesson not found")
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(fallback)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
