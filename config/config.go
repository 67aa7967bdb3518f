package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config is read from the environment. Keys are prefixed by their section (SERVER_PORT); fields
// carrying an explicit envconfig tag also fall back to the bare name (PORT, LOG_LEVEL, DATABASE_URL).
type Config struct {
	Server struct {
		Env      string `split_words:"true" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"4000"`
		Host     string `split_words:"true" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `split_words:"true" default:"5"`
			GracePeriodSeconds   int64 `split_words:"true" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `split_words:"true" default:"todo-api"`
		Timezone string `split_words:"true" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `split_words:"true"`
			AllowedHeaders   []string `split_words:"true" default:"Accept,Authorization,Content-Type,X-Request-ID"`
			AllowedMethods   []string `split_words:"true" default:"GET,POST,PATCH,DELETE,OPTIONS"`
			AllowedOrigins   []string `split_words:"true" default:"*"`
			Enable           bool     `split_words:"true" default:"true"`
			MaxAgeSeconds    int      `split_words:"true" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `split_words:"true"`
			MaxRequests   int  `split_words:"true" default:"100"`
			WindowSeconds int  `split_words:"true" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `split_words:"true" default:"localhost"`
				Port     string `split_words:"true" default:"6379"`
				Password string `split_words:"true"`
				DB       int    `split_words:"true"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		URL                string `envconfig:"DATABASE_URL"`
		MaxRetry           int    `split_words:"true" default:"5"`
		RetryWaitTime      int    `split_words:"true" default:"2"`
		MaxOpenConnections int    `split_words:"true" default:"1"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Exporter string `split_words:"true"`
			Endpoint string `split_words:"true"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the environment into a fresh Config without touching the memoized one.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		var cfg *Config

		cfg, err = Load()
		if err != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	return err
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
