package bot

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/power-bot/internal/classifier"
	"github.com/xaenox/power-bot/internal/models"
	"github.com/xaenox/power-bot/internal/reaction"
	"github.com/xaenox/power-bot/internal/storage"
	"go.uber.org/zap"
)

// Sender is the slice of the Telegram API the pipeline needs to dispatch
// replies. *tgbotapi.BotAPI satisfies it; tests substitute a fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    *tgbotapi.BotAPI
	sender Sender
	store  storage.ScoreStore
	logger *zap.Logger
}

func New(token string, store storage.ScoreStore, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:    api,
		sender: api,
		store:  store,
		logger: logger,
	}, nil
}

// Sender exposes the reply dispatcher so the broadcast job can share it.
func (b *Bot) Sender() Sender {
	return b.sender
}

// Start consumes updates over long polling until the update channel closes.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.run(updates)

	return nil
}

// StartWebhook registers the webhook at baseURL and serves updates over HTTP.
func (b *Bot) StartWebhook(baseURL, listenAddr string) error {
	endpoint := baseURL + "/" + b.api.Token

	wh, err := tgbotapi.NewWebhook(endpoint)
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}

	updates := b.api.ListenForWebhook("/" + b.api.Token)
	go b.run(updates)

	b.logger.Info("Listening for webhook updates",
		zap.String("addr", listenAddr))
	return http.ListenAndServe(listenAddr, nil)
}

func (b *Bot) run(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	b.processText(ctx, message.Chat.ID, message.Text)
}

// processText runs the scoring pipeline for one message: classify, read the
// current score, pick a tier, persist the delta if the tier calls for it,
// reply. Store failures degrade: a failed read counts as score 0 and a
// failed write does not block the reply, which then reports the locally
// computed score even though persistence missed it.
func (b *Bot) processText(ctx context.Context, chatID int64, text string) {
	if text == "" {
		return
	}

	intent := classifier.Classify(text)
	if intent.Kind == models.IntentNoOp {
		return
	}

	score, err := b.store.Score(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to read score, treating as 0",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
		score = 0
	}

	decision := reaction.Decide(intent, score)

	newScore := decision.NewScore
	if decision.Mutates {
		stored, err := b.store.IncrScore(ctx, chatID, intent.Signed())
		if err != nil {
			b.logger.Error("Failed to persist score",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.Int64("delta", intent.Signed()))
		} else {
			// The store increment is atomic, so its result wins over the
			// locally computed value under concurrent updates.
			newScore = stored
		}
	}

	b.sendReaction(chatID, decision.Tier, decision.Mutates, newScore)
}

func (b *Bot) sendReaction(chatID int64, tier models.ReactionTier, withScore bool, score int64) {
	anim := tgbotapi.NewAnimation(chatID, tgbotapi.FileURL(reaction.Animations[tier]))
	if withScore {
		anim.Caption = fmt.Sprintf("Сила чата: %d ⚡", score)
	}

	if _, err := b.sender.Send(anim); err != nil {
		b.logger.Error("Failed to send reaction",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("tier", string(tier)))
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "score":
		b.handleScore(ctx, message)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	name := "боец"
	if message.From != nil && message.From.FirstName != "" {
		name = message.From.FirstName
	}

	b.sendMessage(message.Chat.ID,
		fmt.Sprintf("Привет, %s! Кидай в чат '+5' или '-3', я веду счёт силы.", name))
}

func (b *Bot) handleScore(ctx context.Context, message *tgbotapi.Message) {
	score, err := b.store.Score(ctx, message.Chat.ID)
	if err != nil {
		b.logger.Error("Failed to read score",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		score = 0
	}

	b.sendMessage(message.Chat.ID, fmt.Sprintf("Сила чата: %d ⚡", score))
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
