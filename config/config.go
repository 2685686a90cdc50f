package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			GracePeriodSeconds int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name            string `envconfig:"APP_NAME"`
		Timezone        string `envconfig:"TIMEZONE"`
		BookingBaseURL  string `envconfig:"BOOKING_BASE_URL"`
		DefaultTimezone string `envconfig:"DEFAULT_TIMEZONE"`
	} `envconfig:"APP"`

	Reminder struct {
		IntervalMinutes    int `envconfig:"INTERVAL_MINUTES"`
		CandidateLimit     int `envconfig:"CANDIDATE_LIMIT"`
		Workers            int `envconfig:"WORKERS"`
		SendTimeoutSeconds int `envconfig:"SEND_TIMEOUT_SECONDS"`
	} `envconfig:"REMINDER"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TimezoneTTL int `envconfig:"TIMEZONE_TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`

		GoogleMaps struct {
			APIKey         string `envconfig:"API_KEY"`
			GeocodingURL   string `envconfig:"GEOCODING_URL" default:"https://maps.googleapis.com/maps/api/geocode/json"`
			TimezoneURL    string `envconfig:"TIMEZONE_URL" default:"https://maps.googleapis.com/maps/api/timezone/json"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"5"`
		} `envconfig:"GOOGLE_MAPS"`

		Brevo struct {
			APIKey         string `envconfig:"API_KEY"`
			BaseURL        string `envconfig:"BASE_URL" default:"https://api.brevo.com/v3"`
			SenderEmail    string `envconfig:"SENDER_EMAIL"`
			SenderName     string `envconfig:"SENDER_NAME"`
			TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"10"`
		} `envconfig:"BREVO"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		applyDefaults(&conf)

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

// applyDefaults fills the reminder job knobs that must never be zero.
func applyDefaults(cfg *Config) {
	if cfg.Reminder.IntervalMinutes <= 0 {
		cfg.Reminder.IntervalMinutes = 60
	}

	if cfg.Reminder.CandidateLimit <= 0 {
		cfg.Reminder.CandidateLimit = 1000
	}

	if cfg.Reminder.Workers <= 0 {
		cfg.Reminder.Workers = 4
	}

	if cfg.Reminder.SendTimeoutSeconds <= 0 {
		cfg.Reminder.SendTimeoutSeconds = 10
	}

	if cfg.App.DefaultTimezone == "" {
		cfg.App.DefaultTimezone = "America/New_York"
	}

	if cfg.Cache.TimezoneTTL <= 0 {
		cfg.Cache.TimezoneTTL = 86400
	}
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
