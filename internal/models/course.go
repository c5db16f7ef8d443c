package models

// Course categories. The analytics radar only covers the first four; Advanced
// and Quiz courses still count toward totals and focus areas.
const (
	CategoryAcademic = "Academic"
	CategoryHigherEd = "Higher Ed"
	CategorySkills   = "Skills"
	CategoryBusiness = "Business"
	CategoryAdvanced = "Advanced"
	CategoryQuiz     = "Quiz"
)

// QuizQuestion is a single question in a lesson's quiz. Immutable once part
// of the catalog.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// Lesson is one playable unit inside a course. IsLocked is the instructor
// lock; whether the learner can actually open the lesson also depends on the
// course lock and the learner's premium flag.
type Lesson struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Duration    string         `json:"duration"`
	VideoURL    string         `json:"video_url"`
	IsLocked    bool           `json:"is_locked"`
	IsCompleted bool           `json:"is_completed"`
	Quiz        []QuizQuestion `json:"quiz,omitempty"`
}

// Course is a catalog course merged with a learner's overlay state. Progress
// is derived from lesson completions when lessons exist; for lesson-less
// courses it is externally set. IsLocked is the administrative course-wide
// gate and always wins over lesson-level access rules.
type Course struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category"`
	LessonsCount int      `json:"lessons_count"`
	Duration     string   `json:"duration"`
	Progress     int      `json:"progress"`
	ImageColor   string   `json:"image_color"`
	IsLocked     bool     `json:"is_locked"`
	Lessons      []Lesson `json:"lessons,omitempty"`
}

// Clone returns a deep copy so callers can mutate freely without touching the
// source, in particular the catalog baseline.
func (c Course) Clone() Course {
	out := c
	if c.Lessons != nil {
		out.Lessons = make([]Lesson, len(c.Lessons))
		for i, lesson := range c.Lessons {
			out.Lessons[i] = lesson.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the lesson.
func (l Lesson) Clone() Lesson {
	out := l
	if l.Quiz != nil {
		out.Quiz = make([]QuizQuestion, len(l.Quiz))
		for i, q := range l.Quiz {
			out.Quiz[i] = q
			if q.Options != nil {
				out.Quiz[i].Options = append([]string(nil), q.Options...)
			}
		}
	}
	return out
}

// LessonByID finds a lesson in the course. The second return reports whether
// it exists.
func (c *Course) LessonByID(id string) (*Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}

// LessonAccessible reports whether the learner can open the lesson. The
// administrative course lock always wins; otherwise a locked lesson opens
// only for premium learners.
func LessonAccessible(course Course, lesson Lesson, isPremium bool) bool {
	if course.IsLocked {
		return false
	}
	return !lesson.IsLocked || isPremium
}

// RecomputeProgress derives the course progress from lesson completions:
// round(100 * completed / total), or 0 for a course without lesson records.
func (c *Course) RecomputeProgress() {
	total := len(c.Lessons)
	if total == 0 {
		c.Progress = 0
		return
	}

	completed := 0
	for _, lesson := range c.Lessons {
		if lesson.IsCompleted {
			completed++
		}
	}

	c.Progress = int(float64(completed)/float64(total)*100 + 0.5)
}
