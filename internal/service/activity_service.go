package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/observability"
	"github.com/arkan-dev/eduverse-api/internal/repository"
)

// ActivityService is the append-only study-time ledger, bucketed by calendar
// date per learner scope.
type ActivityService interface {
	RecordMinutes(ctx context.Context, learnerKey, date string, minutes float64) error
	LastNDays(ctx context.Context, learnerKey string, n int) ([]models.DayActivity, error)
}

type activityService struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewActivityService(repo repository.ActivityRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
		now:    time.Now,
	}
}

// RecordMinutes adds minutes to the learner's bucket for the given date.
// Fractional minutes accumulate without rounding.
func (s *activityService) RecordMinutes(ctx context.Context, learnerKey, date string, minutes float64) error {
	if err := s.repo.Increment(ctx, learnerKey, date, minutes); err != nil {
		return fmt.Errorf("failed to increment activity: %w", err)
	}

	observability.ActivityMinutes().Add(minutes)

	return nil
}

// LastNDays returns a dense series ending today. Days with no recorded
// activity appear with zero minutes so charts get a stable window.
func (s *activityService) LastNDays(ctx context.Context, learnerKey string, n int) ([]models.DayActivity, error) {
	today := s.now()
	from := today.AddDate(0, 0, -(n - 1)).Format("2006-01-02")
	to := today.Format("2006-01-02")

	recorded, err := s.repo.GetRange(ctx, learnerKey, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity range: %w", err)
	}

	series := make([]models.DayActivity, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -(n - 1 - i)).Format("2006-01-02")
		series[i] = models.DayActivity{Date: date, Minutes: recorded[date]}
	}

	return series, nil
}
