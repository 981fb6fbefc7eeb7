package broadcast

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/xaenox/power-bot/internal/storage"
	"go.uber.org/zap"
)

// Sender is the slice of the Telegram API the broadcaster needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Broadcaster delivers one fixed greeting to every chat known to the store.
type Broadcaster struct {
	store  storage.ScoreStore
	sender Sender
	text   string
	logger *zap.Logger
}

func New(store storage.ScoreStore, sender Sender, text string, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		store:  store,
		sender: sender,
		text:   text,
		logger: logger,
	}
}

// Run performs a single broadcast. The recipient set is recomputed from the
// store on every run. If enumeration fails the whole run is skipped; there
// is no catch-up before the next scheduled fire. A failed delivery to one
// chat never stops delivery to the rest.
func (b *Broadcaster) Run(ctx context.Context) {
	logger := b.logger.With(zap.String("run_id", uuid.New().String()))

	chats, err := b.store.ChatIDs(ctx)
	if err != nil {
		logger.Error("Failed to enumerate chats, skipping broadcast run",
			zap.Error(err))
		return
	}

	logger.Info("Broadcast run started", zap.Int("chats", len(chats)))

	delivered := 0
	for _, chatID := range chats {
		if _, err := b.sender.Send(tgbotapi.NewMessage(chatID, b.text)); err != nil {
			logger.Error("Failed to deliver broadcast",
				zap.Error(err),
				zap.Int64("chat_id", chatID))
			continue
		}
		delivered++
	}

	logger.Info("Broadcast run finished",
		zap.Int("delivered", delivered),
		zap.Int("failed", len(chats)-delivered))
}
