package database

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"time"

	"phoenix-booking-service/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// GetConnection opens the Postgres pool, retrying while the database comes up.
func GetConnection(cfg *config.DatabaseConfig) *sqlx.DB {
	var (
		db  *sqlx.DB
		err error
	)

	for attempt := 1; ; attempt++ {
		db, err = sqlx.Connect("postgres", DSN(cfg))
		if err == nil {
			break
		}
		if attempt >= cfg.MaxRetries {
			log.Fatalf("failed to connect to database after %d attempts: %v", attempt, err)
		}
		log.Printf("database connect failed, retrying in %s: %v", cfg.RetryInterval, err)
		time.Sleep(cfg.RetryInterval)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db
}

// Migrate applies the idempotent schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
