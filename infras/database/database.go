package database

import (
	"context"
	"fmt"
	"strings"

	"todoapi/config"
	"todoapi/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	sqliteScheme = "sqlite://"
)

// Connection is the process-wide store handle. It is built once at startup and injected into
// every repository.
type Connection struct {
	DB     *sqlx.DB
	Driver string
}

// New opens the store named by DATABASE_URL. postgres:// and postgresql:// URLs go to lib/pq,
// sqlite://<path> opens a local SQLite file.
func New(config *config.Config) *Connection {
	url := config.DB.URL
	if url == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	var (
		db  *sqlx.DB
		err error
	)

	driver := DriverFromURL(url)

	switch driver {
	case constant.DriverSQLite:
		db, err = CreateSQLiteConnection(strings.TrimPrefix(url, sqliteScheme))
	default:
		db, err = CreatePostgresConnection(url, config.DB.MaxRetry, config.DB.RetryWaitTime)
	}

	if err != nil {
		log.Fatal().Err(err).Str("driver", driver).Msg("Failed to open database")
	}

	maxOpen := max(config.DB.MaxOpenConnections, 1)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	return &Connection{
		DB:     db,
		Driver: driver,
	}
}

// DriverFromURL picks the database/sql driver for a connection URL.
func DriverFromURL(url string) string {
	if strings.HasPrefix(url, sqliteScheme) {
		return constant.DriverSQLite
	}

	return constant.DriverPostgres
}

// Ping reports whether the store is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
