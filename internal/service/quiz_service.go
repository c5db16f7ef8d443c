package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/catalog"
	"github.com/arkan-dev/eduverse-api/internal/dto"
)

// ErrQuizNotFound indicates the lesson exists but carries no quiz.
var ErrQuizNotFound = errors.New("lesson has no quiz")

// QuizService grades quiz submissions against the immutable catalog
// questions. Grading is stateless; it never touches learner progress.
type QuizService interface {
	Evaluate(ctx context.Context, courseID, lessonID string, answers map[string]int) (dto.QuizScoreResponse, error)
}

type quizService struct {
	logger zerolog.Logger
}

func NewQuizService(logger zerolog.Logger) QuizService {
	return &quizService{logger: logger.With().Str("component", "quiz_service").Logger()}
}

// Evaluate scores a submission. Unanswered questions and answers for unknown
// question ids simply never match; a partially-filled submission is valid.
func (s *quizService) Evaluate(_ context.Context, courseID, lessonID string, answers map[string]int) (dto.QuizScoreResponse, error) {
	course, ok := catalog.CourseByID(courseID)
	if !ok {
		return dto.QuizScoreResponse{}, ErrCourseNotFound
	}

	lesson, ok := course.LessonByID(lessonID)
	if !ok {
		return dto.QuizScoreResponse{}, ErrLessonNotFound
	}

	if len(lesson.Quiz) == 0 {
		return dto.QuizScoreResponse{}, ErrQuizNotFound
	}

	score := dto.QuizScoreResponse{Total: len(lesson.Quiz)}
	for _, question := range lesson.Quiz {
		if chosen, ok := answers[question.ID]; ok && chosen == question.CorrectAnswer {
			score.Correct++
		}
	}

	return score, nil
}
