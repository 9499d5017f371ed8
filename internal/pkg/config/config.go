package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, cache TTLs, etc.), standard settings
//
// External API keys are intentionally NOT required at load time: a missing key
// fails the dependent route with a 500 server-configuration error instead of
// preventing unrelated routes from serving.
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Liquidium    LiquidiumConfig
	SatsTerminal SatsTerminalConfig
	Ordiscan     OrdiscanConfig
	Cache        CacheConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// LiquidiumConfig configures the lending API. APIKey is the static server key
// sent as "Authorization: Bearer"; the per-user JWT rides in "x-user-token".
type LiquidiumConfig struct {
	BaseURL string        `envconfig:"LIQUIDIUM_API_URL" default:"https://alpha.liquidium.wtf/api/v1"`
	APIKey  string        `envconfig:"LIQUIDIUM_API_KEY"`
	Timeout time.Duration `envconfig:"LIQUIDIUM_TIMEOUT" default:"30s"`
}

// SatsTerminalConfig configures the exchange aggregator.
type SatsTerminalConfig struct {
	BaseURL string        `envconfig:"SATS_TERMINAL_API_URL" default:"https://api.satsterminal.com/v1"`
	APIKey  string        `envconfig:"SATS_TERMINAL_API_KEY"`
	Timeout time.Duration `envconfig:"SATS_TERMINAL_TIMEOUT" default:"30s"`
}

// OrdiscanConfig configures the Bitcoin indexer (read-only rune metadata).
type OrdiscanConfig struct {
	BaseURL string        `envconfig:"ORDISCAN_API_URL" default:"https://api.ordiscan.com/v1"`
	APIKey  string        `envconfig:"ORDISCAN_API_KEY"`
	Timeout time.Duration `envconfig:"ORDISCAN_TIMEOUT" default:"15s"`
}

type CacheConfig struct {
	BorrowRangeTTL time.Duration `envconfig:"BORROW_RANGE_CACHE_TTL" default:"5m"`
	PopularKeep    int           `envconfig:"POPULAR_RUNES_KEEP" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Liquidium: LiquidiumConfig{
			BaseURL: "http://localhost:9801/api/v1",
			APIKey:  "test-liquidium-key",
			Timeout: 5 * time.Second,
		},
		SatsTerminal: SatsTerminalConfig{
			BaseURL: "http://localhost:9802/v1",
			APIKey:  "test-terminal-key",
			Timeout: 5 * time.Second,
		},
		Ordiscan: OrdiscanConfig{
			BaseURL: "http://localhost:9803/v1",
			APIKey:  "test-ordiscan-key",
			Timeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			BorrowRangeTTL: 5 * time.Minute,
			PopularKeep:    5,
		},
	}
}
