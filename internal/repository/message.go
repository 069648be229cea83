package repository

import (
	"context"
	"time"

	"alumnihub/internal/model"
)

// MessageRepository defines data access for broadcast messages.
type MessageRepository interface {
	// Create inserts a new message row.
	Create(ctx context.Context, m *model.Message) error

	// DeleteOlderThan hard-deletes every message created before the cutoff.
	// The predicate delete is idempotent: concurrent callers may both issue it.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// ListSince returns messages created at or after the cutoff. A non-nil
	// category restricts the result to that category.
	ListSince(ctx context.Context, cutoff time.Time, category *model.Category) ([]model.Message, error)
}
