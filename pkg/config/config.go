package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
	// WebhookURL is the externally reachable base URL. When set the bot
	// registers a webhook and serves updates over HTTP; when empty it
	// falls back to long polling.
	WebhookURL string `mapstructure:"webhook_url"`
	ListenAddr string `mapstructure:"listen_addr"`
}

type StorageConfig struct {
	// Backend is one of "redis", "postgres", "memory".
	Backend  string         `mapstructure:"backend"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type BroadcastConfig struct {
	Time     string `mapstructure:"time"`
	Timezone string `mapstructure:"timezone"`
	Text     string `mapstructure:"text"`
}

func parseRedisURL(redisURL string) (RedisConfig, error) {
	u, err := url.Parse(redisURL)
	if err != nil {
		return RedisConfig{}, err
	}

	password, _ := u.User.Password()

	db := 0
	if path := strings.TrimPrefix(u.Path, "/"); path != "" {
		db, err = strconv.Atoi(path)
		if err != nil {
			return RedisConfig{}, fmt.Errorf("invalid redis db index %q: %w", path, err)
		}
	}

	return RedisConfig{
		Addr:     u.Host,
		Password: password,
		DB:       db,
	}, nil
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("telegram.listen_addr", ":8080")
	v.SetDefault("storage.backend", "redis")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 5432)
	v.SetDefault("storage.database.user", "postgres")
	v.SetDefault("storage.database.sslmode", "disable")
	v.SetDefault("broadcast.time", "10:00")
	v.SetDefault("broadcast.timezone", "Europe/Moscow")
	v.SetDefault("broadcast.text", "Доброе утро, бойцы! ☀️ Новый день — новая сила.")

	// Enable environment variable support
	v.AutomaticEnv()

	// The config file is optional, environment variables cover everything.
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		config.Telegram.Token = token
	}

	if baseURL := v.GetString("BASE_URL"); baseURL != "" {
		config.Telegram.WebhookURL = strings.TrimSuffix(baseURL, "/")
	}

	if port := v.GetString("PORT"); port != "" {
		config.Telegram.ListenAddr = ":" + port
	}

	if redisURL := v.GetString("REDIS_URL"); redisURL != "" {
		redisConfig, err := parseRedisURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		config.Storage.Backend = "redis"
		config.Storage.Redis = redisConfig
	}

	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		config.Storage.Backend = "postgres"
		config.Storage.Database = dbConfig
	}

	if config.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is required (set TELEGRAM_TOKEN)")
	}

	return &config, nil
}
