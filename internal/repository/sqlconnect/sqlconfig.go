package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func ConnectDB() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// EnsureSchema creates the books table on first start. This is the only
// migration the app has.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS books (
			id              BIGSERIAL PRIMARY KEY,
			title           TEXT    NOT NULL,
			author          TEXT    NOT NULL DEFAULT '',
			page_count      INTEGER NOT NULL DEFAULT 0,
			cover_image_url TEXT    NOT NULL DEFAULT '',
			status          TEXT    NOT NULL DEFAULT 'ToRead',
			rating          INTEGER NOT NULL DEFAULT 0,
			notes           TEXT    NOT NULL DEFAULT ''
		)`)
	return err
}
