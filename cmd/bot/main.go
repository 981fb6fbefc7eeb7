package main

import (
	"context"

	"github.com/xaenox/power-bot/internal/bot"
	"github.com/xaenox/power-bot/internal/broadcast"
	"github.com/xaenox/power-bot/internal/scheduler"
	"github.com/xaenox/power-bot/internal/storage"
	"github.com/xaenox/power-bot/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize the score store
	var store storage.ScoreStore
	switch cfg.Storage.Backend {
	case "memory":
		logger.Info("Using in-memory score store")
		store = storage.NewMemoryStore()
	case "postgres":
		logger.Info("Using PostgreSQL score store")
		store, err = storage.NewPostgresStore(storage.DatabaseConfig{
			Host:     cfg.Storage.Database.Host,
			Port:     cfg.Storage.Database.Port,
			User:     cfg.Storage.Database.User,
			Password: cfg.Storage.Database.Password,
			DBName:   cfg.Storage.Database.DBName,
			SSLMode:  cfg.Storage.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize score store", zap.Error(err))
		}
	case "redis":
		logger.Info("Using Redis score store",
			zap.String("addr", cfg.Storage.Redis.Addr))
		store, err = storage.NewRedisStore(storage.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize score store", zap.Error(err))
		}
	default:
		logger.Fatal("Unknown storage backend",
			zap.String("backend", cfg.Storage.Backend))
	}
	defer store.Close()

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, store, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Schedule the daily broadcast
	sched, err := scheduler.New(cfg.Broadcast.Timezone)
	if err != nil {
		logger.Fatal("Failed to create scheduler", zap.Error(err))
	}

	morning := broadcast.New(store, b.Sender(), cfg.Broadcast.Text, logger)
	if err := sched.ScheduleDaily(cfg.Broadcast.Time, func() {
		morning.Run(context.Background())
	}); err != nil {
		logger.Fatal("Failed to schedule daily broadcast", zap.Error(err))
	}

	sched.Start()
	defer sched.Stop()
	logger.Info("Daily broadcast scheduled",
		zap.String("time", cfg.Broadcast.Time),
		zap.String("timezone", cfg.Broadcast.Timezone))

	// Start the bot
	if cfg.Telegram.WebhookURL != "" {
		err = b.StartWebhook(cfg.Telegram.WebhookURL, cfg.Telegram.ListenAddr)
	} else {
		err = b.Start()
	}
	if err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
