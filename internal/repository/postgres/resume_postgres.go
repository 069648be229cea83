package postgres

import (
	"context"
	"database/sql"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// ResumePostgres is a PostgreSQL implementation of repository.ResumeRepository.
type ResumePostgres struct {
	db *sql.DB
}

// NewResumePostgres creates a new ResumePostgres repository.
func NewResumePostgres(db *sql.DB) *ResumePostgres {
	return &ResumePostgres{db: db}
}

var _ repository.ResumeRepository = (*ResumePostgres)(nil)

// Upsert stores the résumé in a single conflict-resolving statement keyed by
// email, so concurrent uploads for the same account cannot race.
func (r *ResumePostgres) Upsert(ctx context.Context, res *model.Resume) error {
	const q = `
		INSERT INTO resumes (email, name, resume_data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (email) DO UPDATE SET name = $2, resume_data = $3, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, q, res.Email, res.Name, res.Text)
	return err
}

// FindByEmail fetches the résumé for the email.
func (r *ResumePostgres) FindByEmail(ctx context.Context, email string) (*model.Resume, error) {
	const q = `SELECT email, name, resume_data FROM resumes WHERE email = $1`
	row := r.db.QueryRowContext(ctx, q, email)
	var res model.Resume
	if err := row.Scan(&res.Email, &res.Name, &res.Text); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete removes the résumé for the email and reports how many rows went away.
func (r *ResumePostgres) Delete(ctx context.Context, email string) (int64, error) {
	const q = `DELETE FROM resumes WHERE email = $1`
	res, err := r.db.ExecContext(ctx, q, email)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListOwners returns the name/email pair of every stored résumé.
func (r *ResumePostgres) ListOwners(ctx context.Context) ([]repository.ResumeOwner, error) {
	const q = `SELECT name, email FROM resumes`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := make([]repository.ResumeOwner, 0)
	for rows.Next() {
		var o repository.ResumeOwner
		if err := rows.Scan(&o.Name, &o.Email); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return owners, nil
}
