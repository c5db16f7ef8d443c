package models

import (
	"time"

	"gorm.io/datatypes"
)

// LessonOverlay is the sparse per-learner diff for a single lesson. Fields
// not present here always come from the catalog baseline.
type LessonOverlay struct {
	ID          string `json:"id"`
	IsLocked    bool   `json:"is_locked"`
	IsCompleted bool   `json:"is_completed"`
}

// CourseOverlay is the sparse per-learner diff for a single course.
type CourseOverlay struct {
	ID       string          `json:"id"`
	Progress int             `json:"progress"`
	IsLocked bool            `json:"is_locked"`
	Lessons  []LessonOverlay `json:"lessons,omitempty"`
}

// ProgressSnapshot persists a learner's full overlay as one JSON document
// keyed by the learner scope (email or the guest key).
type ProgressSnapshot struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	LearnerKey string         `gorm:"size:255;uniqueIndex;not null" json:"learner_key"`
	Payload    datatypes.JSON `gorm:"type:json" json:"payload"`
	UpdatedAt  time.Time      `json:"updated_at"`
	CreatedAt  time.Time      `json:"created_at"`
}

// MergeCourse applies an overlay onto a baseline course clone. Lessons or
// courses unknown to the overlay keep their baseline state, so new catalog
// content appears automatically for existing learners. Video URLs are never
// taken from the overlay; uploaded replacements are session-scoped.
func MergeCourse(baseline Course, overlay *CourseOverlay) Course {
	merged := baseline.Clone()
	if overlay == nil {
		return merged
	}

	merged.Progress = overlay.Progress
	merged.IsLocked = overlay.IsLocked

	if len(overlay.Lessons) > 0 {
		byID := make(map[string]LessonOverlay, len(overlay.Lessons))
		for _, lo := range overlay.Lessons {
			byID[lo.ID] = lo
		}
		for i := range merged.Lessons {
			if lo, ok := byID[merged.Lessons[i].ID]; ok {
				merged.Lessons[i].IsLocked = lo.IsLocked
				merged.Lessons[i].IsCompleted = lo.IsCompleted
			}
		}
	}

	return merged
}

// OverlayFromCourse extracts the persistable diff from a merged course.
func OverlayFromCourse(course Course) CourseOverlay {
	overlay := CourseOverlay{
		ID:       course.ID,
		Progress: course.Progress,
		IsLocked: course.IsLocked,
	}
	for _, lesson := range course.Lessons {
		overlay.Lessons = append(overlay.Lessons, LessonOverlay{
			ID:          lesson.ID,
			IsLocked:    lesson.IsLocked,
			IsCompleted: lesson.IsCompleted,
		})
	}
	return overlay
}
