package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// scoresKey is the single hash holding every chat's score, field = chat id.
const scoresKey = "power:scores"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(config RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	// An unreachable store is a fatal startup condition, so fail here
	// rather than on the first update.
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", config.Addr, err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Score(ctx context.Context, chatID int64) (int64, error) {
	val, err := s.client.HGet(ctx, scoresKey, strconv.FormatInt(chatID, 10)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read score for chat %d: %w", chatID, err)
	}

	score, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt score %q for chat %d: %w", val, chatID, err)
	}
	return score, nil
}

func (s *RedisStore) IncrScore(ctx context.Context, chatID, delta int64) (int64, error) {
	score, err := s.client.HIncrBy(ctx, scoresKey, strconv.FormatInt(chatID, 10), delta).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment score for chat %d: %w", chatID, err)
	}
	return score, nil
}

func (s *RedisStore) ChatIDs(ctx context.Context) ([]int64, error) {
	fields, err := s.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate chats: %w", err)
	}

	ids := make([]int64, 0, len(fields))
	for field := range fields {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			s.logger.Warn("Skipping corrupt chat id in store",
				zap.String("field", field))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
