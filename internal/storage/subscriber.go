package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type SubscriberPostgresStorage struct {
	db *sqlx.DB
}

func NewSubscriberStorage(db *sqlx.DB) *SubscriberPostgresStorage {
	return &SubscriberPostgresStorage{db: db}
}

// AllForNewsEmail lists the users who opted in to the daily news summary.
func (s *SubscriberPostgresStorage) AllForNewsEmail(ctx context.Context) ([]model.Subscriber, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var subscribers []dbSubscriber
	if err := conn.SelectContext(ctx, &subscribers,
		`SELECT email, name FROM users WHERE news_email_enabled = TRUE ORDER BY created_at`,
	); err != nil {
		return nil, err
	}

	return lo.Map(subscribers, func(s dbSubscriber, _ int) model.Subscriber {
		return model.Subscriber(s)
	}), nil
}

type dbSubscriber struct {
	Email string `db:"email"`
	Name  string `db:"name"`
}
