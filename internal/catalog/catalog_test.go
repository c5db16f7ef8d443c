package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoursesReturnsClones(t *testing.T) {
	first := Courses()
	require.NotEmpty(t, first)

	first[0].Progress = 99
	first[0].IsLocked = true
	if len(first[0].Lessons) > 0 {
		first[0].Lessons[0].IsCompleted = true
	}

	second := Courses()
	require.Zero(t, second[0].Progress)
	require.False(t, second[0].IsLocked)
	if len(second[0].Lessons) > 0 {
		require.False(t, second[0].Lessons[0].IsCompleted)
	}
}

func TestCourseByID(t *testing.T) {
	course, ok := CourseByID("k12_1")
	require.True(t, ok)
	require.Equal(t, "k12_1", course.ID)
	require.Len(t, course.Lessons, 4)

	_, ok = CourseByID("missing")
	require.False(t, ok)
}

func TestCertificatesAndInternships(t *testing.T) {
	require.NotEmpty(t, Internships())
	require.NotEmpty(t, Certificates())

	cert, ok := CertificateByID(Certificates()[0].ID)
	require.True(t, ok)
	require.NotEmpty(t, cert.Title)

	_, ok = CertificateByID("missing")
	require.False(t, ok)
}
