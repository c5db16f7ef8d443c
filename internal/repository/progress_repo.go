package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

// ErrSnapshotCorrupt indicates the persisted overlay payload cannot be
// decoded. Callers fall back to the catalog baseline.
var ErrSnapshotCorrupt = errors.New("progress snapshot corrupt")

// ProgressRepository persists the per-learner sparse course overlay.
type ProgressRepository interface {
	Load(ctx context.Context, learnerKey string) ([]models.CourseOverlay, error)
	Save(ctx context.Context, learnerKey string, overlays []models.CourseOverlay) error
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository constructs an overlay store backed by the database.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Load returns the learner's overlay, or nil when none has been saved yet.
func (r *progressRepository) Load(ctx context.Context, learnerKey string) ([]models.CourseOverlay, error) {
	var snapshot models.ProgressSnapshot
	err := r.db.WithContext(ctx).Where("learner_key = ?", learnerKey).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var overlays []models.CourseOverlay
	if err := json.Unmarshal(snapshot.Payload, &overlays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}

	return overlays, nil
}

func (r *progressRepository) Save(ctx context.Context, learnerKey string, overlays []models.CourseOverlay) error {
	payload, err := json.Marshal(overlays)
	if err != nil {
		return fmt.Errorf("failed to encode progress snapshot: %w", err)
	}

	snapshot := models.ProgressSnapshot{
		LearnerKey: learnerKey,
		Payload:    datatypes.JSON(payload),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
}
