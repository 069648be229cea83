package postgres

import (
	"context"
	"testing"
	"time"

	"alumnihub/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDonationPostgres_CreateItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonationPostgres(db)
	ctx := context.Background()

	item := &model.DonationItem{
		ID:        "item-uuid",
		Name:      "Sunrise Home",
		Type:      model.DonationOldAge,
		QRKey:     "donations/qr/item-uuid.png",
		HomeKey:   "donations/home/item-uuid.jpg",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO donation_items").
		WithArgs(item.ID, item.Name, string(item.Type), item.QRKey, item.HomeKey, item.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.CreateItem(ctx, item)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationPostgres_ListItemsByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonationPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "type", "qr_key", "home_key", "created_at"}).
		AddRow("i1", "Sunrise Home", "old-age", "donations/qr/i1.png", "", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM donation_items WHERE type = ?").
		WithArgs(string(model.DonationOldAge)).
		WillReturnRows(rows)

	items, err := repo.ListItemsByType(ctx, model.DonationOldAge)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Sunrise Home", items[0].Name)
}

func TestDonationPostgres_CreateTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonationPostgres(db)
	ctx := context.Background()

	tx := &model.DonationTransaction{
		ID:            "tx-uuid",
		ItemName:      "Sunrise Home",
		Amount:        500,
		DonorName:     "Alice",
		DonorEmail:    "a@x.com",
		DonorPhone:    "9999999999",
		ScreenshotKey: "donations/tx/tx-uuid.png",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO donation_transactions").
		WithArgs(tx.ID, tx.ItemName, tx.Amount, tx.DonorName, tx.DonorEmail, tx.DonorPhone, tx.ScreenshotKey, tx.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.CreateTransaction(ctx, tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDonationPostgres_DailyTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDonationPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"item_name", "date", "total_amount"}).
		AddRow("Sunrise Home", "2026-08-31", 750.0).
		AddRow("Sunrise Home", "2026-08-30", 500.0)

	mock.ExpectQuery("SELECT (.+) FROM donation_transactions").
		WithArgs(string(model.DonationOldAge), 2).
		WillReturnRows(rows)

	stats, err := repo.DailyTotals(ctx, model.DonationOldAge, 2)

	assert.NoError(t, err)
	assert.Len(t, stats, 2)
	assert.Equal(t, 750.0, stats[0].TotalAmount)
}
