package dto

import "github.com/arkan-dev/eduverse-api/internal/models"

// LessonView is a lesson annotated with the learner's effective access.
// Accessible is computed on read and never stored: an administrative course
// lock beats everything; otherwise a locked lesson opens only for premium
// learners.
type LessonView struct {
	models.Lesson
	Accessible bool `json:"accessible"`
}

// CourseView is a merged course annotated per lesson with effective access.
type CourseView struct {
	models.Course
	Lessons []LessonView `json:"lessons,omitempty"`
}

// SetProgressRequest directly overrides a course's progress. Used for courses
// without lesson records, where progress cannot be derived.
type SetProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}

// MediaReplacedResponse reports the session-scoped playable URL after an
// instructor upload.
type MediaReplacedResponse struct {
	CourseID string `json:"course_id"`
	LessonID string `json:"lesson_id"`
	VideoURL string `json:"video_url"`
}

// NewCourseView annotates a merged course for the given learner.
func NewCourseView(course models.Course, isPremium bool) CourseView {
	view := CourseView{Course: course}
	if len(course.Lessons) == 0 {
		return view
	}

	view.Lessons = make([]LessonView, len(course.Lessons))
	for i, lesson := range course.Lessons {
		view.Lessons[i] = LessonView{
			Lesson:     lesson,
			Accessible: models.LessonAccessible(course, lesson, isPremium),
		}
	}
	// The embedded copy would otherwise serialize the raw lessons too.
	view.Course.Lessons = nil

	return view
}

// NewCourseViews annotates a full merged course list.
func NewCourseViews(courses []models.Course, isPremium bool) []CourseView {
	views := make([]CourseView, len(courses))
	for i, course := range courses {
		views[i] = NewCourseView(course, isPremium)
	}
	return views
}
