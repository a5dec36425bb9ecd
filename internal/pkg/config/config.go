package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Sectioning SectioningConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	User         string `envconfig:"DB_USER" required:"true"`
	Password     string `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string `envconfig:"DB_NAME" required:"true"`
	SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns     int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	TxMaxRetries int    `envconfig:"DB_TX_MAX_RETRIES" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
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

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// SectioningConfig carries the academic-session switches and solver weights of
// the wait-list resectioning pass. It is passed explicitly to the driver.
type SectioningConfig struct {
	Enabled               bool   `envconfig:"SECTIONING_ENABLED" default:"true"`
	AllowWaitListing      bool   `envconfig:"SECTIONING_ALLOW_WAITLISTING" default:"true"`
	ReschedulingEnabled   bool   `envconfig:"SECTIONING_RESCHEDULING_ENABLED" default:"false"`
	CanKeepCancelledClass bool   `envconfig:"SECTIONING_CAN_KEEP_CANCELLED_CLASS" default:"false"`
	SnapshotPath          string `envconfig:"SECTIONING_SNAPSHOT_PATH" default:""`
	Weights               WeightsConfig
}

type WeightsConfig struct {
	SameSection    float64 `envconfig:"SECTIONING_WEIGHT_SAME_SECTION" default:"1.0"`
	SameConfig     float64 `envconfig:"SECTIONING_WEIGHT_SAME_CONFIG" default:"0.5"`
	SelectionOrder float64 `envconfig:"SECTIONING_WEIGHT_SELECTION_ORDER" default:"0.1"`
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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Sectioning: SectioningConfig{
			Enabled:          true,
			AllowWaitListing: true,
			Weights: WeightsConfig{
				SameSection:    1.0,
				SameConfig:     0.5,
				SelectionOrder: 0.1,
			},
		},
	}
}
