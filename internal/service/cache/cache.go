package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"wordbook/domain"
	"wordbook/internal/service/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	wordsKey = "words:all"
	wordsTTL = time.Minute
)

// NewRedisClient builds a client from REDIS_* environment variables. An empty
// REDIS_ENDPOINT means the deployment runs without a cache.
func NewRedisClient() (*redis.Client, error) {
	address := os.Getenv("REDIS_ENDPOINT")
	if address == "" {
		return nil, errors.New("REDIS_ENDPOINT is not set")
	}
	password := os.Getenv("REDIS_PASSWORD")

	dbNum := 0
	if db := os.Getenv("REDIS_DB"); db != "" {
		num, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		dbNum = num
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       dbNum,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// WordsCache holds the serialized words list for a short TTL. A nil cache is
// valid and disables every operation, so callers never branch on presence.
type WordsCache struct {
	client *redis.Client
}

func NewWordsCache(client *redis.Client) *WordsCache {
	return &WordsCache{client: client}
}

func (c *WordsCache) Get(ctx context.Context) ([]domain.Word, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, wordsKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.DBLogger.Warn("Failed to read words cache", zap.Error(err))
		}
		return nil, false
	}
	var words []domain.Word
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		logger.DBLogger.Warn("Failed to decode words cache", zap.Error(err))
		return nil, false
	}
	return words, true
}

func (c *WordsCache) Set(ctx context.Context, words []domain.Word) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(words)
	if err != nil {
		logger.DBLogger.Warn("Failed to encode words cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, wordsKey, raw, wordsTTL).Err(); err != nil {
		logger.DBLogger.Warn("Failed to write words cache", zap.Error(err))
	}
}

func (c *WordsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, wordsKey).Err(); err != nil {
		logger.DBLogger.Warn("Failed to invalidate words cache", zap.Error(err))
	}
}
