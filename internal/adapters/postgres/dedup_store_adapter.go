package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDedupStoreAdapter хранит множество уже обработанных URL и
// список подписчиков. Обе таблицы только растут.
type PostgresDedupStoreAdapter struct {
	pool *pgxpool.Pool
}

// NewPostgresDedupStoreAdapter - конструктор
func NewPostgresDedupStoreAdapter(pool *pgxpool.Pool) *PostgresDedupStoreAdapter {
	return &PostgresDedupStoreAdapter{pool: pool}
}

func (a *PostgresDedupStoreAdapter) ListSeenURLs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := a.pool.Query(ctx, `SELECT url FROM seen_listings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen listings: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan seen listing: %w", err)
		}
		seen[url] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seen listings: %w", err)
	}

	return seen, nil
}

func (a *PostgresDedupStoreAdapter) MarkSeen(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	// одна вставка на всю пачку; повторные URL тихо пропускаются
	_, err := a.pool.Exec(ctx,
		`INSERT INTO seen_listings (url)
		 SELECT unnest($1::text[])
		 ON CONFLICT (url) DO NOTHING`,
		urls,
	)
	if err != nil {
		return fmt.Errorf("failed to mark listings as seen: %w", err)
	}

	return nil
}

func (a *PostgresDedupStoreAdapter) ListSubscribers(ctx context.Context) ([]int64, error) {
	rows, err := a.pool.Query(ctx, `SELECT chat_id FROM subscribers ORDER BY chat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		chatIDs = append(chatIDs, chatID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subscribers: %w", err)
	}

	return chatIDs, nil
}

func (a *PostgresDedupStoreAdapter) AddSubscriber(ctx context.Context, chatID int64) error {
	_, err := a.pool.Exec(ctx,
		`INSERT INTO subscribers (chat_id)
		 VALUES ($1)
		 ON CONFLICT (chat_id) DO NOTHING`,
		chatID,
	)
	if err != nil {
		return fmt.Errorf("failed to add subscriber %d: %w", chatID, err)
	}

	return nil
}
