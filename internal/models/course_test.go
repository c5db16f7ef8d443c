package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecomputeProgressRounding(t *testing.T) {
	course := Course{Lessons: []Lesson{
		{ID: "a", IsCompleted: true},
		{ID: "b"},
		{ID: "c"},
	}}

	course.RecomputeProgress()
	require.Equal(t, 33, course.Progress)

	course.Lessons[1].IsCompleted = true
	course.RecomputeProgress()
	require.Equal(t, 67, course.Progress)

	course.Lessons[2].IsCompleted = true
	course.RecomputeProgress()
	require.Equal(t, 100, course.Progress)
}

func TestRecomputeProgressWithoutLessons(t *testing.T) {
	course := Course{Progress: 40}
	course.RecomputeProgress()
	require.Zero(t, course.Progress)
}

func TestLessonAccessible(t *testing.T) {
	course := Course{}
	open := Lesson{ID: "open"}
	locked := Lesson{ID: "locked", IsLocked: true}

	require.True(t, LessonAccessible(course, open, false))
	require.False(t, LessonAccessible(course, locked, false))
	require.True(t, LessonAccessible(course, locked, true))

	// The administrative course lock beats premium.
	course.IsLocked = true
	require.False(t, LessonAccessible(course, open, true))
	require.False(t, LessonAccessible(course, locked, true))
}

func TestMergeCourseKeepsBaselineForUnknownLessons(t *testing.T) {
	baseline := Course{
		ID: "c1",
		Lessons: []Lesson{
			{ID: "l1", VideoURL: "https://videos.example.com/original.mp4"},
			{ID: "l2"},
		},
	}
	overlay := &CourseOverlay{
		ID:       "c1",
		Progress: 50,
		Lessons: []LessonOverlay{
			{ID: "l1", IsCompleted: true},
		},
	}

	merged := MergeCourse(baseline, overlay)
	require.Equal(t, 50, merged.Progress)
	require.True(t, merged.Lessons[0].IsCompleted)
	require.False(t, merged.Lessons[1].IsCompleted)

	// Overlay state never carries media URLs.
	require.Equal(t, "https://videos.example.com/original.mp4", merged.Lessons[0].VideoURL)
}

func TestMergeCourseNilOverlay(t *testing.T) {
	baseline := Course{ID: "c1", Lessons: []Lesson{{ID: "l1"}}}

	merged := MergeCourse(baseline, nil)
	require.Equal(t, baseline.ID, merged.ID)
	require.Zero(t, merged.Progress)

	// The merge hands back a clone, not the baseline itself.
	merged.Lessons[0].IsCompleted = true
	require.False(t, baseline.Lessons[0].IsCompleted)
}

func TestNormalizeRole(t *testing.T) {
	require.Equal(t, RoleSchoolStudent, NormalizeRole("Student"))
	require.Equal(t, RoleCollegeStudent, NormalizeRole(" college "))
	require.Equal(t, RoleProfessional, NormalizeRole("PROFESSIONAL"))
	require.Empty(t, NormalizeRole("wizard"))
}
