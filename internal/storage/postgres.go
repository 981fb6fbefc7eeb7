package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(config DatabaseConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) initializeSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS scores (
			chat_id BIGINT PRIMARY KEY,
			score   BIGINT NOT NULL DEFAULT 0
		)`)
	return err
}

func (s *PostgresStore) Score(ctx context.Context, chatID int64) (int64, error) {
	var score int64
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM scores WHERE chat_id = $1`, chatID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading score for chat %d: %w", chatID, err)
	}
	return score, nil
}

func (s *PostgresStore) IncrScore(ctx context.Context, chatID, delta int64) (int64, error) {
	var score int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO scores (chat_id, score)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET score = scores.score + EXCLUDED.score
		RETURNING score`,
		chatID, delta).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("error incrementing score for chat %d: %w", chatID, err)
	}
	return score, nil
}

func (s *PostgresStore) ChatIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT chat_id FROM scores`)
	if err != nil {
		return nil, fmt.Errorf("error enumerating chats: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning chat id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chats: %w", err)
	}
	return ids, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
