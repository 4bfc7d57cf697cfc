// Package storage implements Postgres-backed lookups for digest subscribers
// and their watchlist symbols.
package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type WatchlistPostgresStorage struct {
	db *sqlx.DB
}

func NewWatchlistStorage(db *sqlx.DB) *WatchlistPostgresStorage {
	return &WatchlistPostgresStorage{db: db}
}

// SymbolsByEmail returns the user's watchlist tickers in the order they were
// added. A user without a watchlist yields an empty slice, not an error.
func (s *WatchlistPostgresStorage) SymbolsByEmail(ctx context.Context, email string) ([]string, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var symbols []string
	if err := conn.SelectContext(ctx, &symbols,
		`SELECT w.symbol
		   FROM watchlists w
		   JOIN users u ON u.id = w.user_id
		  WHERE u.email = $1
		  ORDER BY w.added_at`,
		email,
	); err != nil {
		return nil, err
	}

	return symbols, nil
}
