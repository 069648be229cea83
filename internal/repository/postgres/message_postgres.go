package postgres

import (
	"context"
	"database/sql"
	"time"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

// Create inserts a new message row.
func (r *MessagePostgres) Create(ctx context.Context, m *model.Message) error {
	const q = `
		INSERT INTO messages (id, category, message, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Category, m.Body, m.CreatedAt)
	return err
}

// DeleteOlderThan hard-deletes messages created before the cutoff.
func (r *MessagePostgres) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM messages WHERE created_at < $1`
	res, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListSince returns messages created at or after the cutoff, optionally
// filtered by category, newest first.
func (r *MessagePostgres) ListSince(ctx context.Context, cutoff time.Time, category *model.Category) ([]model.Message, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category != nil {
		const q = `
			SELECT id, category, message, created_at
			FROM messages
			WHERE created_at >= $1 AND category = $2
			ORDER BY created_at DESC
		`
		rows, err = r.db.QueryContext(ctx, q, cutoff, *category)
	} else {
		const q = `
			SELECT id, category, message, created_at
			FROM messages
			WHERE created_at >= $1
			ORDER BY created_at DESC
		`
		rows, err = r.db.QueryContext(ctx, q, cutoff)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]model.Message, 0)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Category, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}
