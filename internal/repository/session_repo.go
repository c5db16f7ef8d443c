package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

const activeSessionKey = "eduverse:session:active"

// ErrNoActiveSession indicates no learner is currently logged in.
var ErrNoActiveSession = errors.New("no active session")

// SessionRepository holds the single active-session snapshot. Only one
// learner is active at a time; logout clears the slot but never the registry.
type SessionRepository interface {
	SaveActive(ctx context.Context, learner models.Learner) error
	GetActive(ctx context.Context) (models.Learner, error)
	ClearActive(ctx context.Context) error
}

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository constructs a Redis-backed session slot.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &sessionRepository{client: client, ttl: ttl}
}

func (r *sessionRepository) SaveActive(ctx context.Context, learner models.Learner) error {
	payload, err := json.Marshal(learner)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	return r.client.Set(ctx, activeSessionKey, payload, r.ttl).Err()
}

func (r *sessionRepository) GetActive(ctx context.Context) (models.Learner, error) {
	payload, err := r.client.Get(ctx, activeSessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Learner{}, ErrNoActiveSession
		}
		return models.Learner{}, err
	}

	var learner models.Learner
	if err := json.Unmarshal([]byte(payload), &learner); err != nil {
		return models.Learner{}, fmt.Errorf("failed to decode session snapshot: %w", err)
	}

	return learner, nil
}

func (r *sessionRepository) ClearActive(ctx context.Context) error {
	return r.client.Del(ctx, activeSessionKey).Err()
}
