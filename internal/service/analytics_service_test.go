package service

import (
	"context"
	"io"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

type progressStub struct {
	courses []models.Course
}

func (p *progressStub) CoursesFor(context.Context, string, bool) ([]models.Course, error) {
	out := make([]models.Course, len(p.courses))
	for i, course := range p.courses {
		out[i] = course.Clone()
	}
	return out, nil
}

func (p *progressStub) CourseFor(context.Context, string, string, bool) (models.Course, error) {
	return models.Course{}, ErrCourseNotFound
}

func (p *progressStub) MarkLessonComplete(context.Context, string, string, string) (models.Course, error) {
	return models.Course{}, ErrCourseNotFound
}

func (p *progressStub) ToggleLessonLock(context.Context, string, string, string) (models.Course, error) {
	return models.Course{}, ErrCourseNotFound
}

func (p *progressStub) ToggleCourseLock(context.Context, string, string) (models.Course, error) {
	return models.Course{}, ErrCourseNotFound
}

func (p *progressStub) SetCourseProgress(context.Context, string, string, int) (models.Course, error) {
	return models.Course{}, ErrCourseNotFound
}

func (p *progressStub) ReplaceLessonMedia(context.Context, string, string, string, string, io.Reader) (string, error) {
	return "", ErrUploaderUnavailable
}

func (p *progressStub) EndSession(string) {}

type activityStub struct {
	days []models.DayActivity
}

func (a *activityStub) RecordMinutes(context.Context, string, string, float64) error { return nil }

func (a *activityStub) LastNDays(context.Context, string, int) ([]models.DayActivity, error) {
	return a.days, nil
}

func analyticsFixture() (*progressStub, *activityStub) {
	progress := &progressStub{courses: []models.Course{
		{ID: "a1", Category: models.CategoryAcademic, Progress: 50, Lessons: []models.Lesson{
			{ID: "l1", Duration: "10:05", IsCompleted: true},
			{ID: "l2", Duration: "15:30", IsCompleted: true},
			{ID: "l3", Duration: "12:45"},
			{ID: "l4", Duration: "18:20"},
		}},
		{ID: "a2", Title: "Physics", Category: models.CategoryAcademic, ImageColor: "bg-blue-500"},
		{ID: "h1", Category: models.CategoryHigherEd, Progress: 100, Duration: "2h"},
		{ID: "s1", Category: models.CategorySkills, Progress: 10, Duration: "10h"},
	}}

	activity := &activityStub{days: []models.DayActivity{
		{Date: "2024-03-14", Minutes: 30},
		{Date: "2024-03-15", Minutes: 25.583},
	}}

	return progress, activity
}

func TestAnalyticsOverview(t *testing.T) {
	progress, activity := analyticsFixture()
	svc := NewAnalyticsService(progress, activity, nil, time.Minute, zerolog.Nop())

	overview, err := svc.Overview(context.Background(), "guest", false)
	require.NoError(t, err)

	// Completed lessons: 10:05 + 15:30 = 25.583 min. Lesson-less courses:
	// h1 at 100% of 2h, s1 at 10% of 10h = 180 min. Total 3.4h.
	require.InDelta(t, 3.4, overview.TotalHours, 1e-9)

	// Started courses: 50, 100, 10 -> mean 53.3 rounds to 53.
	require.Equal(t, 53, overview.AverageProgress)

	// Only a1 and s1 sit strictly between 0 and 100.
	require.Equal(t, 2, overview.ActiveCourses)

	require.Len(t, overview.CategoryPerformance, 4)
	require.Equal(t, models.CategoryAcademic, overview.CategoryPerformance[0].Category)
	require.Equal(t, 25, overview.CategoryPerformance[0].Score)
	require.Equal(t, models.CategoryHigherEd, overview.CategoryPerformance[1].Category)
	require.Equal(t, 100, overview.CategoryPerformance[1].Score)
	require.Equal(t, models.CategorySkills, overview.CategoryPerformance[2].Category)
	require.Equal(t, 10, overview.CategoryPerformance[2].Score)
	require.Equal(t, models.CategoryBusiness, overview.CategoryPerformance[3].Category)
	require.Zero(t, overview.CategoryPerformance[3].Score)

	require.Len(t, overview.FocusAreas, 2)
	require.Equal(t, "a1", overview.FocusAreas[0].ID)
	require.Equal(t, "s1", overview.FocusAreas[1].ID)

	require.Len(t, overview.WeeklyActivity, 2)
	require.Equal(t, "Thu", overview.WeeklyActivity[0].Day)
	require.InDelta(t, 0.5, overview.WeeklyActivity[0].Hours, 1e-9)
	require.InDelta(t, 0.4, overview.WeeklyActivity[1].Hours, 1e-9)
}

func TestAnalyticsEmptyState(t *testing.T) {
	progress := &progressStub{courses: []models.Course{
		{ID: "a1", Category: models.CategoryAcademic},
	}}
	svc := NewAnalyticsService(progress, &activityStub{}, nil, time.Minute, zerolog.Nop())

	overview, err := svc.Overview(context.Background(), "guest", false)
	require.NoError(t, err)
	require.Zero(t, overview.TotalHours)
	require.Zero(t, overview.AverageProgress)
	require.Zero(t, overview.ActiveCourses)
	require.Empty(t, overview.FocusAreas)
}

func TestAnalyticsCacheRoundTrip(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer redisClient.Close()

	progress, activity := analyticsFixture()
	svc := NewAnalyticsService(progress, activity, redisClient, time.Minute, zerolog.Nop())

	first, err := svc.Overview(context.Background(), "guest", false)
	require.NoError(t, err)

	// Mutate the underlying state; the cached overview must still be served.
	progress.courses[0].Progress = 75

	cached, err := svc.Overview(context.Background(), "guest", false)
	require.NoError(t, err)
	require.Equal(t, first.AverageProgress, cached.AverageProgress)

	svc.Invalidate(context.Background(), "guest")

	fresh, err := svc.Overview(context.Background(), "guest", false)
	require.NoError(t, err)
	require.NotEqual(t, first.AverageProgress, fresh.AverageProgress)
}
