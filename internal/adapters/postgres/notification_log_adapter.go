package postgres

import (
	"context"
	"fmt"

	"housing-watcher-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"
)

// Точность геохэша ~150 метров, достаточно для группировки по кварталу
const notifiedGeohashPrecision = 7

// PostgresNotificationLogAdapter ведет журнал разосланных объявлений.
// Геохэш считается при записи, чтобы операторские запросы могли
// группировать уведомления по району без PostGIS.
type PostgresNotificationLogAdapter struct {
	pool *pgxpool.Pool
}

// NewPostgresNotificationLogAdapter - конструктор
func NewPostgresNotificationLogAdapter(pool *pgxpool.Pool) *PostgresNotificationLogAdapter {
	return &PostgresNotificationLogAdapter{pool: pool}
}

func (a *PostgresNotificationLogAdapter) RecordNotified(ctx context.Context, listing domain.FullListing) error {
	cell := geohash.EncodeWithPrecision(listing.Location.Latitude, listing.Location.Longitude, notifiedGeohashPrecision)

	_, err := a.pool.Exec(ctx,
		`INSERT INTO notified_listings (url, title, price, area, longitude, latitude, geohash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (url) DO NOTHING`,
		listing.URL, listing.Title, listing.Price, listing.Area,
		listing.Location.Longitude, listing.Location.Latitude, cell,
	)
	if err != nil {
		return fmt.Errorf("failed to record notified listing %s: %w", listing.URL, err)
	}

	return nil
}
