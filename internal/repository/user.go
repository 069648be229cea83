package repository

import (
	"context"

	"alumnihub/internal/model"
)

// UserRepository defines data access for alumni accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new account row. A unique violation on the email key is
	// reported as ErrDuplicateKey.
	Create(ctx context.Context, u *model.User) error

	// FindByEmail returns the account with the given email, or sql.ErrNoRows.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdatePassword replaces the stored credential hash. Returns the number of
	// rows updated (0 means the email does not exist).
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)

	// List returns every account.
	List(ctx context.Context) ([]model.User, error)

	// ListEmailsByStatus returns the emails of all accounts whose status equals
	// the given category. Used to fan out broadcast notifications.
	ListEmailsByStatus(ctx context.Context, status model.Category) ([]string, error)
}
