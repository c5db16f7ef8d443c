package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

// ErrLearnerNotFound indicates the email has no entry in the registry.
var ErrLearnerNotFound = errors.New("learner not found")

// LearnerRepository is the durable email-keyed identity registry. Logging out
// never removes entries; only the active session is cleared.
type LearnerRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Learner, error)
	Upsert(ctx context.Context, learner models.Learner) (models.Learner, error)
}

type learnerRepository struct {
	db *gorm.DB
}

// NewLearnerRepository constructs a learner registry backed by the database.
func NewLearnerRepository(db *gorm.DB) LearnerRepository {
	return &learnerRepository{db: db}
}

func (r *learnerRepository) GetByEmail(ctx context.Context, email string) (models.Learner, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var learner models.Learner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&learner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Learner{}, ErrLearnerNotFound
		}
		return models.Learner{}, err
	}

	return learner, nil
}

// Upsert writes the learner keyed by email, last write wins.
func (r *learnerRepository) Upsert(ctx context.Context, learner models.Learner) (models.Learner, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "avatar", "is_premium", "updated_at"}),
	}).Create(&learner).Error
	if err != nil {
		return models.Learner{}, err
	}

	return r.GetByEmail(ctx, learner.Email)
}
