package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/dto"
	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/pkg/duration"
)

const analyticsCachePrefix = "eduverse:analytics:"

// radarCategories is the fixed order of the category performance chart.
var radarCategories = []string{
	models.CategoryAcademic,
	models.CategoryHigherEd,
	models.CategorySkills,
	models.CategoryBusiness,
}

// AnalyticsService derives display-ready learning analytics from the
// learner's course state and activity ledger. Results are cached briefly in
// Redis; mutations invalidate the cache through Invalidate.
type AnalyticsService interface {
	Overview(ctx context.Context, learnerKey string, isPremium bool) (dto.AnalyticsResponse, error)
	Invalidate(ctx context.Context, learnerKey string)
}

type analyticsService struct {
	progress ProgressService
	activity ActivityService
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAnalyticsService builds the analytics reader. cache may be nil, which
// disables caching entirely.
func NewAnalyticsService(progress ProgressService, activity ActivityService, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		progress: progress,
		activity: activity,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "analytics_service").Logger(),
	}
}

func (s *analyticsService) Overview(ctx context.Context, learnerKey string, isPremium bool) (dto.AnalyticsResponse, error) {
	if cached, ok := s.fromCache(ctx, learnerKey); ok {
		return cached, nil
	}

	courses, err := s.progress.CoursesFor(ctx, learnerKey, isPremium)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	week, err := s.activity.LastNDays(ctx, learnerKey, 7)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	response := dto.AnalyticsResponse{
		TotalHours:          totalHours(courses),
		AverageProgress:     averageProgress(courses),
		ActiveCourses:       activeCourses(courses),
		CategoryPerformance: categoryPerformance(courses),
		FocusAreas:          focusAreas(courses),
		WeeklyActivity:      weeklyActivity(week),
	}

	s.toCache(ctx, learnerKey, response)

	return response, nil
}

// Invalidate drops the cached overview for a learner. Failures only cost
// cache freshness, so they are logged and swallowed.
func (s *analyticsService) Invalidate(ctx context.Context, learnerKey string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, analyticsCachePrefix+learnerKey).Err(); err != nil {
		s.logger.Warn().Err(err).Str("learner", learnerKey).Msg("failed to invalidate analytics cache")
	}
}

func (s *analyticsService) fromCache(ctx context.Context, learnerKey string) (dto.AnalyticsResponse, bool) {
	if s.cache == nil {
		return dto.AnalyticsResponse{}, false
	}

	raw, err := s.cache.Get(ctx, analyticsCachePrefix+learnerKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("analytics cache read failed")
		}
		return dto.AnalyticsResponse{}, false
	}

	var response dto.AnalyticsResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return dto.AnalyticsResponse{}, false
	}

	return response, true
}

func (s *analyticsService) toCache(ctx context.Context, learnerKey string, response dto.AnalyticsResponse) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, analyticsCachePrefix+learnerKey, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("analytics cache write failed")
	}
}

// totalHours sums the parsed duration of every completed lesson, plus a
// progress-proportional share of the course duration for lesson-less courses
// that have been started. Unparseable durations contribute zero.
func totalHours(courses []models.Course) float64 {
	minutes := 0.0
	for _, course := range courses {
		if len(course.Lessons) == 0 {
			if course.Progress > 0 {
				minutes += duration.Minutes(course.Duration) * float64(course.Progress) / 100
			}
			continue
		}
		for _, lesson := range course.Lessons {
			if lesson.IsCompleted {
				minutes += duration.Minutes(lesson.Duration)
			}
		}
	}

	return math.Round(minutes/60*10) / 10
}

// averageProgress is the mean progress across started courses, rounded to the
// nearest whole percent. No started courses means zero.
func averageProgress(courses []models.Course) int {
	sum, started := 0, 0
	for _, course := range courses {
		if course.Progress > 0 {
			sum += course.Progress
			started++
		}
	}

	if started == 0 {
		return 0
	}

	return int(float64(sum)/float64(started) + 0.5)
}

func activeCourses(courses []models.Course) int {
	count := 0
	for _, course := range courses {
		if course.Progress > 0 && course.Progress < 100 {
			count++
		}
	}
	return count
}

// categoryPerformance reports the mean progress per radar category, always
// emitting all four categories in fixed order. Categories with no courses
// score zero.
func categoryPerformance(courses []models.Course) []dto.CategoryScore {
	sums := make(map[string]int, len(radarCategories))
	counts := make(map[string]int, len(radarCategories))
	for _, course := range courses {
		sums[course.Category] += course.Progress
		counts[course.Category]++
	}

	scores := make([]dto.CategoryScore, len(radarCategories))
	for i, category := range radarCategories {
		score := 0
		if counts[category] > 0 {
			score = int(float64(sums[category])/float64(counts[category]) + 0.5)
		}
		scores[i] = dto.CategoryScore{Category: category, Score: score}
	}

	return scores
}

// focusAreas lists started-but-unfinished courses in catalog order.
func focusAreas(courses []models.Course) []dto.FocusCourse {
	focus := make([]dto.FocusCourse, 0)
	for _, course := range courses {
		if course.Progress > 0 && course.Progress < 100 {
			focus = append(focus, dto.FocusCourse{
				ID:         course.ID,
				Title:      course.Title,
				Category:   course.Category,
				Progress:   course.Progress,
				ImageColor: course.ImageColor,
			})
		}
	}
	return focus
}

func weeklyActivity(week []models.DayActivity) []dto.WeeklyDay {
	days := make([]dto.WeeklyDay, len(week))
	for i, day := range week {
		label := day.Date
		if parsed, err := time.Parse("2006-01-02", day.Date); err == nil {
			label = parsed.Format("Mon")
		}
		days[i] = dto.WeeklyDay{
			Date:  day.Date,
			Day:   label,
			Hours: math.Round(day.Minutes/60*10) / 10,
		}
	}
	return days
}
