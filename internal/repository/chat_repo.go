package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arkan-dev/eduverse-api/internal/models"
)

// ChatRepository stores study-buddy transcripts per learner. Transcripts are
// session-scoped: they live under a TTL and are not part of durable state.
type ChatRepository interface {
	Append(ctx context.Context, learnerKey string, message models.ChatMessage) error
	History(ctx context.Context, learnerKey string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, learnerKey string) error
}

type chatRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChatRepository constructs a Redis-backed transcript store.
func NewChatRepository(client *redis.Client, ttl time.Duration) ChatRepository {
	return &chatRepository{client: client, ttl: ttl}
}

func transcriptKey(learnerKey string) string {
	return "eduverse:chat:" + learnerKey
}

func (r *chatRepository) Append(ctx context.Context, learnerKey string, message models.ChatMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode chat message: %w", err)
	}

	key := transcriptKey(learnerKey)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, r.ttl)
	_, err = pipe.Exec(ctx)

	return err
}

func (r *chatRepository) History(ctx context.Context, learnerKey string) ([]models.ChatMessage, error) {
	entries, err := r.client.LRange(ctx, transcriptKey(learnerKey), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	messages := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var message models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (r *chatRepository) Clear(ctx context.Context, learnerKey string) error {
	return r.client.Del(ctx, transcriptKey(learnerKey)).Err()
}
