package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/catalog"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/observability"
	"github.com/arkan-dev/eduverse-api/internal/repository"
	"github.com/arkan-dev/eduverse-api/pkg/duration"
	"github.com/arkan-dev/eduverse-api/pkg/mediastore"
)

var (
	// ErrCourseNotFound indicates the course id has no catalog match.
	ErrCourseNotFound = errors.New("course not found")
	// ErrLessonNotFound indicates the lesson id has no match in the course.
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrInvalidMediaType indicates an uploaded file is not a video.
	ErrInvalidMediaType = errors.New("uploaded file is not a video")
	// ErrUploaderUnavailable indicates no media store is configured.
	ErrUploaderUnavailable = errors.New("media uploads are not configured")
)

// ActivityRecorder is the slice of the activity ledger the progress engine
// notifies on first-time completions.
type ActivityRecorder interface {
	RecordMinutes(ctx context.Context, learnerKey, date string, minutes float64) error
}

// ProgressService is the per-learner progress-and-access state machine. It
// owns the mutable course/lesson state for each learner scope: completion
// flags, lock flags and derived progress percentages.
type ProgressService interface {
	CoursesFor(ctx context.Context, learnerKey string, isPremium bool) ([]models.Course, error)
	CourseFor(ctx context.Context, learnerKey, courseID string, isPremium bool) (models.Course, error)
	MarkLessonComplete(ctx context.Context, learnerKey, courseID, lessonID string) (models.Course, error)
	ToggleLessonLock(ctx context.Context, learnerKey, courseID, lessonID string) (models.Course, error)
	ToggleCourseLock(ctx context.Context, learnerKey, courseID string) (models.Course, error)
	SetCourseProgress(ctx context.Context, learnerKey, courseID string, progress int) (models.Course, error)
	ReplaceLessonMedia(ctx context.Context, learnerKey, courseID, lessonID, filename string, media io.Reader) (string, error)
	EndSession(learnerKey string)
}

type progressService struct {
	repo     repository.ProgressRepository
	activity ActivityRecorder
	uploader mediastore.Uploader
	logger   zerolog.Logger
	now      func() time.Time

	// Session-scoped media replacements, never persisted. Keyed by learner
	// scope, then course/lesson.
	mediaMu sync.RWMutex
	media   map[string]map[string]string
}

// NewProgressService builds the progress engine. uploader may be nil when
// media uploads are not configured.
func NewProgressService(repo repository.ProgressRepository, activity ActivityRecorder, uploader mediastore.Uploader, logger zerolog.Logger) ProgressService {
	return &progressService{
		repo:     repo,
		activity: activity,
		uploader: uploader,
		logger:   logger.With().Str("component", "progress_service").Logger(),
		now:      time.Now,
		media:    make(map[string]map[string]string),
	}
}

// CoursesFor returns the learner's merged course collection: the catalog
// baseline with the persisted overlay applied, plus any session-scoped media
// replacements. A corrupt snapshot falls back to the baseline.
func (s *progressService) CoursesFor(ctx context.Context, learnerKey string, _ bool) ([]models.Course, error) {
	return s.load(ctx, learnerKey)
}

func (s *progressService) CourseFor(ctx context.Context, learnerKey, courseID string, _ bool) (models.Course, error) {
	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return models.Course{}, err
	}

	for _, course := range courses {
		if course.ID == courseID {
			return course, nil
		}
	}

	return models.Course{}, ErrCourseNotFound
}

// MarkLessonComplete transitions a lesson to completed exactly once. The
// first completion logs the lesson's parsed duration into today's activity
// bucket and recomputes the course progress; repeating the call changes
// nothing and logs nothing.
func (s *progressService) MarkLessonComplete(ctx context.Context, learnerKey, courseID, lessonID string) (models.Course, error) {
	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return models.Course{}, err
	}

	course, ok := courseByID(courses, courseID)
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	lesson, ok := course.LessonByID(lessonID)
	if !ok {
		return models.Course{}, ErrLessonNotFound
	}

	if lesson.IsCompleted {
		return *course, nil
	}

	minutes := duration.Minutes(lesson.Duration)
	today := s.now().Format("2006-01-02")
	if err := s.activity.RecordMinutes(ctx, learnerKey, today, minutes); err != nil {
		return models.Course{}, fmt.Errorf("failed to record activity: %w", err)
	}

	lesson.IsCompleted = true
	course.RecomputeProgress()
	observability.LessonCompletions().WithLabelValues(courseID).Inc()

	if err := s.save(ctx, learnerKey, courses); err != nil {
		return models.Course{}, err
	}

	s.logger.Info().
		Str("learner", learnerKey).
		Str("course_id", courseID).
		Str("lesson_id", lessonID).
		Int("progress", course.Progress).
		Float64("minutes", minutes).
		Msg("lesson completed")

	return *course, nil
}

func (s *progressService) ToggleLessonLock(ctx context.Context, learnerKey, courseID, lessonID string) (models.Course, error) {
	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return models.Course{}, err
	}

	course, ok := courseByID(courses, courseID)
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	lesson, ok := course.LessonByID(lessonID)
	if !ok {
		return models.Course{}, ErrLessonNotFound
	}

	lesson.IsLocked = !lesson.IsLocked

	if err := s.save(ctx, learnerKey, courses); err != nil {
		return models.Course{}, err
	}

	return *course, nil
}

func (s *progressService) ToggleCourseLock(ctx context.Context, learnerKey, courseID string) (models.Course, error) {
	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return models.Course{}, err
	}

	course, ok := courseByID(courses, courseID)
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	course.IsLocked = !course.IsLocked

	if err := s.save(ctx, learnerKey, courses); err != nil {
		return models.Course{}, err
	}

	return *course, nil
}

// SetCourseProgress overrides the stored percentage directly. Used for
// courses without lesson records; bounds are enforced at the API boundary.
func (s *progressService) SetCourseProgress(ctx context.Context, learnerKey, courseID string, progress int) (models.Course, error) {
	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return models.Course{}, err
	}

	course, ok := courseByID(courses, courseID)
	if !ok {
		return models.Course{}, ErrCourseNotFound
	}

	course.Progress = progress

	if err := s.save(ctx, learnerKey, courses); err != nil {
		return models.Course{}, err
	}

	return *course, nil
}

// ReplaceLessonMedia validates and stores an instructor upload, then swaps
// the playable URL onto the lesson for the rest of this session only. The
// replacement is never persisted and disappears when the session ends.
func (s *progressService) ReplaceLessonMedia(ctx context.Context, learnerKey, courseID, lessonID, filename string, media io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploaderUnavailable
	}

	courses, err := s.load(ctx, learnerKey)
	if err != nil {
		return "", err
	}

	course, ok := courseByID(courses, courseID)
	if !ok {
		return "", ErrCourseNotFound
	}
	if _, ok := course.LessonByID(lessonID); !ok {
		return "", ErrLessonNotFound
	}

	payload, err := io.ReadAll(media)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	if kind := mimetype.Detect(payload); !strings.HasPrefix(kind.String(), "video/") {
		return "", ErrInvalidMediaType
	}

	url, err := s.uploader.Upload(ctx, filename, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to store media: %w", err)
	}

	s.mediaMu.Lock()
	if s.media[learnerKey] == nil {
		s.media[learnerKey] = make(map[string]string)
	}
	s.media[learnerKey][courseID+"/"+lessonID] = url
	s.mediaMu.Unlock()

	s.logger.Info().
		Str("learner", learnerKey).
		Str("course_id", courseID).
		Str("lesson_id", lessonID).
		Msg("lesson media replaced for session")

	return url, nil
}

// EndSession discards the learner's session-scoped media replacements.
func (s *progressService) EndSession(learnerKey string) {
	s.mediaMu.Lock()
	delete(s.media, learnerKey)
	s.mediaMu.Unlock()
}

// load merges the persisted overlay onto the catalog baseline. The baseline
// supplies any course or lesson absent from the snapshot, so new catalog
// content shows up for existing learners. A corrupt snapshot degrades to the
// plain baseline.
func (s *progressService) load(ctx context.Context, learnerKey string) ([]models.Course, error) {
	overlays, err := s.repo.Load(ctx, learnerKey)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotCorrupt) {
			s.logger.Warn().Err(err).Str("learner", learnerKey).Msg("progress snapshot corrupt, falling back to catalog baseline")
			overlays = nil
		} else {
			return nil, err
		}
	}

	byID := make(map[string]*models.CourseOverlay, len(overlays))
	for i := range overlays {
		byID[overlays[i].ID] = &overlays[i]
	}

	baseline := catalog.Courses()
	merged := make([]models.Course, len(baseline))
	for i, course := range baseline {
		merged[i] = models.MergeCourse(course, byID[course.ID])
	}

	s.applySessionMedia(learnerKey, merged)

	return merged, nil
}

func (s *progressService) save(ctx context.Context, learnerKey string, courses []models.Course) error {
	overlays := make([]models.CourseOverlay, len(courses))
	for i, course := range courses {
		overlays[i] = models.OverlayFromCourse(course)
	}

	if err := s.repo.Save(ctx, learnerKey, overlays); err != nil {
		return fmt.Errorf("failed to persist progress snapshot: %w", err)
	}

	return nil
}

func (s *progressService) applySessionMedia(learnerKey string, courses []models.Course) {
	s.mediaMu.RLock()
	replacements := s.media[learnerKey]
	s.mediaMu.RUnlock()

	if len(replacements) == 0 {
		return
	}

	for i := range courses {
		for j := range courses[i].Lessons {
			if url, ok := replacements[courses[i].ID+"/"+courses[i].Lessons[j].ID]; ok {
				courses[i].Lessons[j].VideoURL = url
			}
		}
	}
}

func courseByID(courses []models.Course, id string) (*models.Course, bool) {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], true
		}
	}
	return nil, false
}
