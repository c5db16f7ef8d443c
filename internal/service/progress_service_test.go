package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/repository"
	"github.com/arkan-dev/eduverse-api/pkg/mediastore"
)

type recordedMinutes struct {
	learnerKey string
	date       string
	minutes    float64
}

type activityRecorderStub struct {
	records []recordedMinutes
	err     error
}

func (a *activityRecorderStub) RecordMinutes(_ context.Context, learnerKey, date string, minutes float64) error {
	if a.err != nil {
		return a.err
	}
	a.records = append(a.records, recordedMinutes{learnerKey: learnerKey, date: date, minutes: minutes})
	return nil
}

type uploaderStub struct {
	url      string
	uploaded []string
}

func (u *uploaderStub) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	u.uploaded = append(u.uploaded, name)
	return u.url, nil
}

// Minimal MP4 container header, enough for content sniffing.
var mp4Header = append([]byte{0, 0, 0, 0x1c}, []byte("ftypisom\x00\x00\x02\x00isomiso2mp41")...)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Learner{}, &models.ProgressSnapshot{}, &models.ActivityEntry{}))

	return db
}

func newTestProgressService(t *testing.T, recorder ActivityRecorder, uploader *uploaderStub) (*progressService, repository.ProgressRepository) {
	t.Helper()

	repo := repository.NewProgressRepository(testDB(t))
	var up mediastore.Uploader
	if uploader != nil {
		up = uploader
	}

	svc := NewProgressService(repo, recorder, up, zerolog.Nop()).(*progressService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	return svc, repo
}

func TestMarkLessonCompleteDerivesProgressAndLogsActivity(t *testing.T) {
	recorder := &activityRecorderStub{}
	svc, _ := newTestProgressService(t, recorder, nil)

	course, err := svc.MarkLessonComplete(context.Background(), "guest", "k12_1", "l1")
	require.NoError(t, err)
	require.Equal(t, 25, course.Progress)

	require.Len(t, recorder.records, 1)
	require.Equal(t, "guest", recorder.records[0].learnerKey)
	require.Equal(t, "2024-03-15", recorder.records[0].date)
	require.InDelta(t, 10.0+5.0/60.0, recorder.records[0].minutes, 1e-9)

	course, err = svc.MarkLessonComplete(context.Background(), "guest", "k12_1", "l2")
	require.NoError(t, err)
	require.Equal(t, 50, course.Progress)

	require.Len(t, recorder.records, 2)
	require.InDelta(t, 15.5, recorder.records[1].minutes, 1e-9)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	recorder := &activityRecorderStub{}
	svc, _ := newTestProgressService(t, recorder, nil)

	first, err := svc.MarkLessonComplete(context.Background(), "guest", "k12_1", "l1")
	require.NoError(t, err)

	second, err := svc.MarkLessonComplete(context.Background(), "guest", "k12_1", "l1")
	require.NoError(t, err)

	require.Equal(t, first.Progress, second.Progress)
	require.Len(t, recorder.records, 1, "repeated completion must not log activity again")
}

func TestMarkLessonCompleteUnknownTargets(t *testing.T) {
	recorder := &activityRecorderStub{}
	svc, _ := newTestProgressService(t, recorder, nil)

	_, err := svc.MarkLessonComplete(context.Background(), "guest", "nope", "l1")
	require.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.MarkLessonComplete(context.Background(), "guest", "k12_1", "nope")
	require.ErrorIs(t, err, ErrLessonNotFound)

	require.Empty(t, recorder.records, "failed completions must not log activity")

	courses, err := svc.CoursesFor(context.Background(), "guest", false)
	require.NoError(t, err)
	for _, course := range courses {
		require.Zero(t, course.Progress, "failed completions must not mutate state")
	}
}

func TestProgressSurvivesServiceRestart(t *testing.T) {
	recorder := &activityRecorderStub{}
	svc, repo := newTestProgressService(t, recorder, nil)

	_, err := svc.MarkLessonComplete(context.Background(), "alice@example.com", "k12_1", "l1")
	require.NoError(t, err)

	rebooted := NewProgressService(repo, recorder, nil, zerolog.Nop())
	course, err := rebooted.CourseFor(context.Background(), "alice@example.com", "k12_1", false)
	require.NoError(t, err)
	require.Equal(t, 25, course.Progress)

	lesson, ok := course.LessonByID("l1")
	require.True(t, ok)
	require.True(t, lesson.IsCompleted)
}

func TestLearnerScopesAreIsolated(t *testing.T) {
	recorder := &activityRecorderStub{}
	svc, _ := newTestProgressService(t, recorder, nil)

	_, err := svc.MarkLessonComplete(context.Background(), "alice@example.com", "k12_1", "l1")
	require.NoError(t, err)

	course, err := svc.CourseFor(context.Background(), "guest", "k12_1", false)
	require.NoError(t, err)
	require.Zero(t, course.Progress)
}

func TestCorruptSnapshotFallsBackToBaseline(t *testing.T) {
	db := testDB(t)
	repo := repository.NewProgressRepository(db)
	svc := NewProgressService(repo, &activityRecorderStub{}, nil, zerolog.Nop())

	require.NoError(t, db.Create(&models.ProgressSnapshot{
		LearnerKey: "guest",
		Payload:    []byte("{not json"),
	}).Error)

	courses, err := svc.CoursesFor(context.Background(), "guest", false)
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	for _, course := range courses {
		require.Zero(t, course.Progress)
	}
}

func TestToggleLocks(t *testing.T) {
	svc, _ := newTestProgressService(t, &activityRecorderStub{}, nil)

	course, err := svc.ToggleCourseLock(context.Background(), "guest", "k12_1")
	require.NoError(t, err)
	require.True(t, course.IsLocked)

	course, err = svc.ToggleCourseLock(context.Background(), "guest", "k12_1")
	require.NoError(t, err)
	require.False(t, course.IsLocked)

	course, err = svc.ToggleLessonLock(context.Background(), "guest", "k12_1", "l4")
	require.NoError(t, err)
	lesson, ok := course.LessonByID("l4")
	require.True(t, ok)
	require.False(t, lesson.IsLocked, "l4 starts locked, toggling unlocks it")
}

func TestSetCourseProgressForLessonlessCourse(t *testing.T) {
	svc, _ := newTestProgressService(t, &activityRecorderStub{}, nil)

	course, err := svc.SetCourseProgress(context.Background(), "guest", "high_2", 40)
	require.NoError(t, err)
	require.Equal(t, 40, course.Progress)

	reloaded, err := svc.CourseFor(context.Background(), "guest", "high_2", false)
	require.NoError(t, err)
	require.Equal(t, 40, reloaded.Progress)
}

func TestReplaceLessonMediaIsSessionScoped(t *testing.T) {
	uploader := &uploaderStub{url: "https://cdn.example.com/replaced.mp4"}
	repo := repository.NewProgressRepository(testDB(t))
	svc := NewProgressService(repo, &activityRecorderStub{}, uploader, zerolog.Nop())

	url, err := svc.ReplaceLessonMedia(context.Background(), "guest", "k12_1", "l1", "new-lecture.mp4", bytes.NewReader(mp4Header))
	require.NoError(t, err)
	require.Equal(t, uploader.url, url)

	course, err := svc.CourseFor(context.Background(), "guest", "k12_1", false)
	require.NoError(t, err)
	lesson, ok := course.LessonByID("l1")
	require.True(t, ok)
	require.Equal(t, uploader.url, lesson.VideoURL)

	// A fresh service over the same store must see the original URL.
	rebooted := NewProgressService(repo, &activityRecorderStub{}, uploader, zerolog.Nop())
	course, err = rebooted.CourseFor(context.Background(), "guest", "k12_1", false)
	require.NoError(t, err)
	lesson, ok = course.LessonByID("l1")
	require.True(t, ok)
	require.NotEqual(t, uploader.url, lesson.VideoURL)

	svc.EndSession("guest")
	course, err = svc.CourseFor(context.Background(), "guest", "k12_1", false)
	require.NoError(t, err)
	lesson, ok = course.LessonByID("l1")
	require.True(t, ok)
	require.NotEqual(t, uploader.url, lesson.VideoURL)
}

func TestReplaceLessonMediaRejectsNonVideo(t *testing.T) {
	uploader := &uploaderStub{url: "https://cdn.example.com/replaced.mp4"}
	repo := repository.NewProgressRepository(testDB(t))
	svc := NewProgressService(repo, &activityRecorderStub{}, uploader, zerolog.Nop())

	_, err := svc.ReplaceLessonMedia(context.Background(), "guest", "k12_1", "l1", "notes.txt", bytes.NewReader([]byte("plain text, not a video")))
	require.ErrorIs(t, err, ErrInvalidMediaType)
	require.Empty(t, uploader.uploaded)
}

func TestReplaceLessonMediaWithoutUploader(t *testing.T) {
	repo := repository.NewProgressRepository(testDB(t))
	svc := NewProgressService(repo, &activityRecorderStub{}, nil, zerolog.Nop())

	_, err := svc.ReplaceLessonMedia(context.Background(), "guest", "k12_1", "l1", "new.mp4", bytes.NewReader(mp4Header))
	require.ErrorIs(t, err, ErrUploaderUnavailable)
}
