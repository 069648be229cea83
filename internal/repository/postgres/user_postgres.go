package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new account row.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) error {
	const q = `
		INSERT INTO users (email, fullname, password_hash, dob, city, state, country, phone, status, qualification, branch, passoutyear)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, q,
		u.Email,
		u.FullName,
		u.PasswordHash,
		u.DOB,
		u.City,
		u.State,
		u.Country,
		u.Phone,
		u.Status,
		u.Qualification,
		u.Branch,
		u.PassoutYear,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// FindByEmail fetches a single account by its email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
		SELECT email, fullname, password_hash, dob, city, state, country, phone, status, qualification, branch, passoutyear
		FROM users
		WHERE email = $1
	`
	row := r.db.QueryRowContext(ctx, q, email)
	var u model.User
	if err := row.Scan(
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.DOB,
		&u.City,
		&u.State,
		&u.Country,
		&u.Phone,
		&u.Status,
		&u.Qualification,
		&u.Branch,
		&u.PassoutYear,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword replaces the stored credential hash for the email.
func (r *UserPostgres) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	const q = `UPDATE users SET password_hash = $1 WHERE email = $2`
	res, err := r.db.ExecContext(ctx, q, passwordHash, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns every account.
func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	const q = `
		SELECT email, fullname, password_hash, dob, city, state, country, phone, status, qualification, branch, passoutyear
		FROM users
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.Email,
			&u.FullName,
			&u.PasswordHash,
			&u.DOB,
			&u.City,
			&u.State,
			&u.Country,
			&u.Phone,
			&u.Status,
			&u.Qualification,
			&u.Branch,
			&u.PassoutYear,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// ListEmailsByStatus returns the emails of accounts in the given category.
func (r *UserPostgres) ListEmailsByStatus(ctx context.Context, status model.Category) ([]string, error) {
	const q = `SELECT email FROM users WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, q, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return emails, nil
}
