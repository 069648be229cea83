package postgres

import (
	"context"
	"database/sql"
	"testing"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func newTestUser() *model.User {
	return &model.User{
		Email:         "a@x.com",
		FullName:      "Alice Example",
		PasswordHash:  "$2a$10$hash",
		DOB:           "1999-01-01",
		City:          "Pune",
		State:         "MH",
		Country:       "India",
		Phone:         "9999999999",
		Status:        model.CategoryEmployed,
		Qualification: "BTech",
		Branch:        "CSE",
		PassoutYear:   "2021",
	}
}

func TestUserPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()
	u := newTestUser()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(u.Email, u.FullName, u.PasswordHash, u.DOB, u.City, u.State, u.Country, u.Phone, string(u.Status), u.Qualification, u.Branch, u.PassoutYear).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, u)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.Create(ctx, u)

		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	cols := []string{"email", "fullname", "password_hash", "dob", "city", "state", "country", "phone", "status", "qualification", "branch", "passoutyear"}

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow("a@x.com", "Alice Example", "$2a$10$hash", "1999-01-01", "Pune", "MH", "India", "9999999999", "employed", "BTech", "CSE", "2021")

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("a@x.com").
			WillReturnRows(rows)

		u, err := repo.FindByEmail(ctx, "a@x.com")

		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.Equal(t, model.CategoryEmployed, u.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = ?").
			WithArgs("missing@x.com").
			WillReturnError(sql.ErrNoRows)

		u, err := repo.FindByEmail(ctx, "missing@x.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, u)
	})
}

func TestUserPostgres_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("row updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("$2a$10$newhash", "a@x.com").
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.UpdatePassword(ctx, "a@x.com", "$2a$10$newhash")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("email missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("$2a$10$newhash", "missing@x.com").
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.UpdatePassword(ctx, "missing@x.com", "$2a$10$newhash")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestUserPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	cols := []string{"email", "fullname", "password_hash", "dob", "city", "state", "country", "phone", "status", "qualification", "branch", "passoutyear"}
	rows := sqlmock.NewRows(cols).
		AddRow("a@x.com", "Alice", "h1", "", "Pune", "MH", "India", "", "employed", "BTech", "CSE", "2021").
		AddRow("b@x.com", "Bob", "h2", "", "Delhi", "DL", "India", "", "pursuing", "MTech", "ECE", "2024")

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	users, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "b@x.com", users[1].Email)
}

func TestUserPostgres_ListEmailsByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewUserPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"email"}).
		AddRow("a@x.com").
		AddRow("c@x.com")

	mock.ExpectQuery("SELECT email FROM users WHERE status = ?").
		WithArgs(string(model.CategoryEmployed)).
		WillReturnRows(rows)

	emails, err := repo.ListEmailsByStatus(ctx, model.CategoryEmployed)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "c@x.com"}, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}
