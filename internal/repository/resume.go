package repository

import (
	"context"

	"alumnihub/internal/model"
)

// ResumeOwner is a "name - email" pair for administrative browsing.
type ResumeOwner struct {
	Name  string
	Email string
}

// ResumeRepository defines data access for résumé documents.
type ResumeRepository interface {
	// Upsert stores the résumé for the email in a single conflict-resolving
	// statement, replacing any prior row. Single-statement so two concurrent
	// uploads for the same email cannot interleave a read-modify-write.
	Upsert(ctx context.Context, r *model.Resume) error

	// FindByEmail returns the résumé for the email, or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.Resume, error)

	// Delete removes the résumé for the email. Returns the number of rows
	// deleted (0 means nothing was stored).
	Delete(ctx context.Context, email string) (int64, error)

	// ListOwners returns the name/email pairs of every stored résumé.
	ListOwners(ctx context.Context) ([]ResumeOwner, error)
}
