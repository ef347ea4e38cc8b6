package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
)

// QuestionCacheRepository caches generated question lists in Redis, keyed by
// topic, difficulty and count, so repeated requests skip the LLM call.
type QuestionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached question lists
}

// NewQuestionCacheRepository creates a new repository instance with optional TTL
func NewQuestionCacheRepository(client *redis.Client, expiration time.Duration) *QuestionCacheRepository {
	return &QuestionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetQuestions fetches a cached question list for the given parameters
func (r *QuestionCacheRepository) GetQuestions(ctx context.Context, topic, difficulty string, count int) ([]string, error) {
	key := fmt.Sprintf("questions:%s:%s:%d", topic, difficulty, count)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("question cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("questions not found in cache for %s/%s", topic, difficulty)
		}
		return nil, err
	}

	var questions []string
	if err := json.Unmarshal([]byte(val), &questions); err != nil {
		logger.Log.Infow("question cache decode failed",
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("question cache hit",
		"key", key,
		"count", len(questions),
	)

	return questions, nil
}

// SetQuestions caches a question list in Redis with expiration
func (r *QuestionCacheRepository) SetQuestions(ctx context.Context, topic, difficulty string, count int, questions []string) error {
	key := fmt.Sprintf("questions:%s:%s:%d", topic, difficulty, count)

	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("question cache set",
		"key", key,
		"count", len(questions),
		"error", err,
	)

	return err
}
