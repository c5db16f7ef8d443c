package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestQuizEvaluateFullScore(t *testing.T) {
	svc := NewQuizService(zerolog.Nop())

	score, err := svc.Evaluate(context.Background(), "quiz_1", "gk_1", map[string]int{
		"q1": 1, "q2": 2, "q3": 1, "q4": 2,
	})
	require.NoError(t, err)
	require.Equal(t, 4, score.Total)
	require.Equal(t, 4, score.Correct)
}

func TestQuizEvaluatePartialSubmission(t *testing.T) {
	svc := NewQuizService(zerolog.Nop())

	score, err := svc.Evaluate(context.Background(), "quiz_1", "gk_1", map[string]int{
		"q1": 1,
		"q2": 0,
	})
	require.NoError(t, err)
	require.Equal(t, 4, score.Total)
	require.Equal(t, 1, score.Correct)
}

func TestQuizEvaluateCountsOnlyMatchingAnswers(t *testing.T) {
	svc := NewQuizService(zerolog.Nop())

	// gk_2 expects [2,1,0]; the third answer is wrong.
	score, err := svc.Evaluate(context.Background(), "quiz_1", "gk_2", map[string]int{
		"q1": 2, "q2": 1, "q3": 1,
	})
	require.NoError(t, err)
	require.Equal(t, 3, score.Total)
	require.Equal(t, 2, score.Correct)
}

func TestQuizEvaluateIgnoresUnknownQuestionIDs(t *testing.T) {
	svc := NewQuizService(zerolog.Nop())

	score, err := svc.Evaluate(context.Background(), "quiz_1", "gk_1", map[string]int{
		"bogus": 1,
	})
	require.NoError(t, err)
	require.Equal(t, 4, score.Total)
	require.Zero(t, score.Correct)
}

func TestQuizEvaluateMissingTargets(t *testing.T) {
	svc := NewQuizService(zerolog.Nop())

	_, err := svc.Evaluate(context.Background(), "nope", "gk_1", nil)
	require.ErrorIs(t, err, ErrCourseNotFound)

	_, err = svc.Evaluate(context.Background(), "quiz_1", "nope", nil)
	require.ErrorIs(t, err, ErrLessonNotFound)

	// k12_1/l2 exists but has no quiz attached.
	_, err = svc.Evaluate(context.Background(), "k12_1", "l2", nil)
	require.ErrorIs(t, err, ErrQuizNotFound)
}
