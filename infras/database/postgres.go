package database

//nolint:revive
import (
	"errors"
	"fmt"
	"time"

	"todoapi/shared/constant"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var errNoAttempts = errors.New("no connection attempts configured")

// CreatePostgresConnection connects to Postgres, retrying up to maxRetry times with waitTime
// seconds between attempts.
func CreatePostgresConnection(url string, maxRetry, waitTime int) (*sqlx.DB, error) {
	err := errNoAttempts

	for retry := range maxRetry {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(constant.DriverPostgres, url)
		if err == nil {
			log.
				Info().
				Str("driver", constant.DriverPostgres).
				Msg("Connected to database")

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("driver", constant.DriverPostgres).
			Int("attempt", retry+1).
			Int("maxRetry", maxRetry).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, fmt.Errorf("failed connecting to postgres: %w", err)
}
