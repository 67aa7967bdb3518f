package database

//nolint:revive
import (
	"fmt"

	"todoapi/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// sqliteSchema creates the todos table for the local store. created_at keeps millisecond
// precision so listing order follows insertion order.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS todos (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	text       TEXT NOT NULL,
	done       BOOLEAN NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
);`

func init() {
	// sqlx does not know modernc's driver name; named queries must compile to '?'.
	sqlx.BindDriver(constant.DriverSQLite, sqlx.QUESTION)
}

// CreateSQLiteConnection opens (or creates) the SQLite file at path and makes sure the todos
// table exists.
func CreateSQLiteConnection(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(constant.DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err = db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to bootstrap sqlite schema: %w", err)
	}

	log.Info().Str("driver", constant.DriverSQLite).Str("path", path).Msg("Connected to database")

	return db, nil
}
