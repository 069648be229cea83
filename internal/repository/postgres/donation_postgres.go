package postgres

import (
	"context"
	"database/sql"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// DonationPostgres is a PostgreSQL implementation of repository.DonationRepository.
type DonationPostgres struct {
	db *sql.DB
}

// NewDonationPostgres creates a new DonationPostgres repository.
func NewDonationPostgres(db *sql.DB) *DonationPostgres {
	return &DonationPostgres{db: db}
}

var _ repository.DonationRepository = (*DonationPostgres)(nil)

// CreateItem inserts a new donation listing.
func (r *DonationPostgres) CreateItem(ctx context.Context, item *model.DonationItem) error {
	const q = `
		INSERT INTO donation_items (id, name, type, qr_key, home_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, q, item.ID, item.Name, item.Type, item.QRKey, item.HomeKey, item.CreatedAt)
	return err
}

// ListItemsByType returns every listing of the given type, newest first.
func (r *DonationPostgres) ListItemsByType(ctx context.Context, t model.DonationType) ([]model.DonationItem, error) {
	const q = `
		SELECT id, name, type, qr_key, home_key, created_at
		FROM donation_items
		WHERE type = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DonationItem, 0)
	for rows.Next() {
		var it model.DonationItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.QRKey, &it.HomeKey, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateTransaction records a donor-submitted payment.
func (r *DonationPostgres) CreateTransaction(ctx context.Context, tx *model.DonationTransaction) error {
	const q = `
		INSERT INTO donation_transactions (id, item_name, amount, donor_name, donor_email, donor_phone, screenshot_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, q,
		tx.ID,
		tx.ItemName,
		tx.Amount,
		tx.DonorName,
		tx.DonorEmail,
		tx.DonorPhone,
		tx.ScreenshotKey,
		tx.CreatedAt,
	)
	return err
}

// DailyTotals sums donations per item per calendar day for listings of the
// given type over the most recent days.
func (r *DonationPostgres) DailyTotals(ctx context.Context, t model.DonationType, days int) ([]model.DonationDailyStat, error) {
	const q = `
		SELECT tx.item_name, to_char(tx.created_at::date, 'YYYY-MM-DD') AS date, SUM(tx.amount) AS total_amount
		FROM donation_transactions tx
		JOIN donation_items di ON di.name = tx.item_name
		WHERE di.type = $1 AND tx.created_at >= now() - make_interval(days => $2)
		GROUP BY tx.item_name, tx.created_at::date
		ORDER BY date DESC, tx.item_name
	`
	rows, err := r.db.QueryContext(ctx, q, t, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]model.DonationDailyStat, 0)
	for rows.Next() {
		var s model.DonationDailyStat
		if err := rows.Scan(&s.ItemName, &s.Date, &s.TotalAmount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
