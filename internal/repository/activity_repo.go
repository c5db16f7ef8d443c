package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

// ActivityRepository persists date-bucketed learned minutes per learner.
// Buckets are increment-only.
type ActivityRepository interface {
	Increment(ctx context.Context, learnerKey, date string, minutes float64) error
	GetRange(ctx context.Context, learnerKey, fromDate, toDate string) (map[string]float64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs an activity ledger backed by the database.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Increment(ctx context.Context, learnerKey, date string, minutes float64) error {
	entry := models.ActivityEntry{
		LearnerKey: learnerKey,
		Date:       date,
		Minutes:    minutes,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_key"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"minutes": gorm.Expr("minutes + ?", minutes)}),
	}).Create(&entry).Error
}

// GetRange returns the buckets recorded between fromDate and toDate
// inclusive. Dates compare lexicographically in ISO form.
func (r *activityRepository) GetRange(ctx context.Context, learnerKey, fromDate, toDate string) (map[string]float64, error) {
	var entries []models.ActivityEntry
	err := r.db.WithContext(ctx).
		Where("learner_key = ? AND date >= ? AND date <= ?", learnerKey, fromDate, toDate).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]float64, len(entries))
	for _, entry := range entries {
		buckets[entry.Date] = entry.Minutes
	}

	return buckets, nil
}
