package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Catalog source kinds
const (
	SourceCSV      = "csv"
	SourceDrive    = "drive"
	SourcePostgres = "postgres"
)

type Config struct {
	// HTTP listen port; a leading colon is tolerated
	Port string `env:"PORT" envDefault:"8080"`

	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"csv"`
	DatasetFile   string `env:"DATASET_FILE" envDefault:"images.csv"`

	// Google Drive spreadsheet holding the catalog
	CatalogSheetID  string `env:"CATALOG_SHEET_ID"`
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	DatabaseURL string `env:"DATABASE_URL"`

	WeatherAPIKey  string        `env:"WEATHER_API_KEY"`
	WeatherBaseURL string        `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	GeoBaseURL     string        `env:"GEO_BASE_URL" envDefault:"https://ipinfo.io"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"6s"`

	ChromePath      string        `env:"CHROME_PATH"`
	LookbookTimeout time.Duration `env:"LOOKBOOK_TIMEOUT" envDefault:"30s"`

	// Honor X-Forwarded-For only behind a known reverse proxy
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads .env (outside production, overriding the process environment)
// and parses environment variables into Config.
func Load() (Config, error) {
	if os.Getenv("ENV") != "production" {
		// ignore error if file does not exist
		_ = godotenv.Overload(".env")
	}

	return Parse()
}

// Parse reads Config from the current environment and validates it
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected catalog source has what it needs
func (c Config) Validate() error {
	switch c.CatalogSource {
	case SourceCSV:
		if c.DatasetFile == "" {
			return fmt.Errorf("DATASET_FILE is required for the csv catalog source")
		}
	case SourceDrive:
		if c.CatalogSheetID == "" {
			return fmt.Errorf("CATALOG_SHEET_ID is required for the drive catalog source")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres catalog source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}

// Addr returns the listen address on all interfaces
func (c Config) Addr() string {
	port := c.Port
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}
	return "0.0.0.0:" + port
}
