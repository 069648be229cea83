package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  email         TEXT        PRIMARY KEY,
  fullname      TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  dob           TEXT        NOT NULL DEFAULT '',
  city          TEXT        NOT NULL DEFAULT '',
  state         TEXT        NOT NULL DEFAULT '',
  country       TEXT        NOT NULL DEFAULT '',
  phone         TEXT        NOT NULL DEFAULT '',
  status        TEXT        NOT NULL CHECK (status IN ('employed', 'graduated', 'pursuing')),
  qualification TEXT        NOT NULL DEFAULT '',
  branch        TEXT        NOT NULL DEFAULT '',
  passoutyear   TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_status ON users (status);`,
	},
	{
		Name: "create_table_messages",
		SQL: `CREATE TABLE IF NOT EXISTS messages (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  category   TEXT        NOT NULL CHECK (category IN ('employed', 'graduated', 'pursuing')),
  message    TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_messages_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at);`,
	},
	{
		Name: "create_index_messages_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_messages_category ON messages (category);`,
	},
	{
		Name: "create_table_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
  email       TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  resume_data TEXT        NOT NULL,
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_donation_items",
		SQL: `CREATE TABLE IF NOT EXISTS donation_items (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  type       TEXT        NOT NULL CHECK (type IN ('old-age', 'orphan')),
  qr_key     TEXT        NOT NULL,
  home_key   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_donation_items_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_donation_items_type ON donation_items (type);`,
	},
	{
		Name: "create_table_donation_transactions",
		SQL: `CREATE TABLE IF NOT EXISTS donation_transactions (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  item_name      TEXT        NOT NULL,
  amount         NUMERIC     NOT NULL CHECK (amount >= 0),
  donor_name     TEXT        NOT NULL,
  donor_email    TEXT        NOT NULL,
  donor_phone    TEXT        NOT NULL DEFAULT '',
  screenshot_key TEXT        NOT NULL DEFAULT '',
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_donation_transactions_item_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_donation_transactions_item_name ON donation_transactions (item_name);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
