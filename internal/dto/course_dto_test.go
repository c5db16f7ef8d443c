package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

func TestNewCourseViewAnnotatesAccess(t *testing.T) {
	course := models.Course{
		ID: "c1",
		Lessons: []models.Lesson{
			{ID: "open"},
			{ID: "locked", IsLocked: true},
		},
	}

	view := NewCourseView(course, false)
	require.True(t, view.Lessons[0].Accessible)
	require.False(t, view.Lessons[1].Accessible)

	premiumView := NewCourseView(course, true)
	require.True(t, premiumView.Lessons[1].Accessible)

	course.IsLocked = true
	adminLocked := NewCourseView(course, true)
	require.False(t, adminLocked.Lessons[0].Accessible)
	require.False(t, adminLocked.Lessons[1].Accessible)
}

func TestCourseViewSerialisesLessonsOnce(t *testing.T) {
	course := models.Course{
		ID:      "c1",
		Lessons: []models.Lesson{{ID: "l1"}},
	}

	payload, err := json.Marshal(NewCourseView(course, false))
	require.NoError(t, err)

	var decoded struct {
		ID      string `json:"id"`
		Lessons []struct {
			ID         string `json:"id"`
			Accessible bool   `json:"accessible"`
		} `json:"lessons"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, "c1", decoded.ID)
	require.Len(t, decoded.Lessons, 1)
	require.True(t, decoded.Lessons[0].Accessible)
}
