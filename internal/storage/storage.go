package storage

import (
	"context"

	"github.com/xaenox/power-bot/internal/models"
)

// ScoreStore is the durable mapping from chat to power score.
//
// A chat that was never written has an implicit score of 0: Score returns
// (0, nil) for absent chats, absence is never an error. IncrScore is atomic
// at the store level and returns the value after the increment, so two
// concurrent deltas to the same chat can never lose an update. ChatIDs
// enumerates every chat that was ever written, including those whose score
// is explicitly 0.
type ScoreStore interface {
	Score(ctx context.Context, chatID models.ChatID) (int64, error)
	IncrScore(ctx context.Context, chatID models.ChatID, delta int64) (int64, error)
	ChatIDs(ctx context.Context) ([]models.ChatID, error)
	Close() error
}
