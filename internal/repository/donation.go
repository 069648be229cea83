package repository

import (
	"context"

	"alumnihub/internal/model"
)

// DonationRepository defines data access for donation listings and
// donor-submitted transactions.
type DonationRepository interface {
	// CreateItem inserts a new donation listing.
	CreateItem(ctx context.Context, item *model.DonationItem) error

	// ListItemsByType returns every listing of the given type.
	ListItemsByType(ctx context.Context, t model.DonationType) ([]model.DonationItem, error)

	// CreateTransaction records a donor-submitted payment.
	CreateTransaction(ctx context.Context, tx *model.DonationTransaction) error

	// DailyTotals returns per-item donation sums grouped by calendar day for
	// listings of the given type, newest days first, limited to the most
	// recent days.
	DailyTotals(ctx context.Context, t model.DonationType, days int) ([]model.DonationDailyStat, error)
}
