package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverHTTP     = "http"

	EstimatorFixed  = "fixed"
	EstimatorRandom = "random"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	RecordStore  RecordStore  `mapstructure:",squash"`
	Returns      Returns      `mapstructure:",squash"`
	Insight      Insight      `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// RecordStore selects where products, sales and costs are read from.
type RecordStore struct {
	Driver       string        `mapstructure:"record_store_driver"`
	FilePath     string        `mapstructure:"record_store_file_path"`
	FeedURL      string        `mapstructure:"record_store_feed_url"`
	FetchTimeout time.Duration `mapstructure:"record_store_fetch_timeout"`
	CacheTTL     time.Duration `mapstructure:"record_store_cache_ttl"`
}

type Returns struct {
	Estimator string  `mapstructure:"returns_estimator"`
	FixedRate float64 `mapstructure:"returns_fixed_rate"`
	MinRate   float64 `mapstructure:"returns_min_rate"`
	MaxRate   float64 `mapstructure:"returns_max_rate"`
	Seed      int64   `mapstructure:"returns_seed"`
}

type Insight struct {
	Enabled bool          `mapstructure:"insight_enabled"`
	Latency time.Duration `mapstructure:"insight_latency"`
	Timeout time.Duration `mapstructure:"insight_timeout"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "5s")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seller_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("RECORD_STORE_DRIVER", DriverFile)
	viper.SetDefault("RECORD_STORE_FILE_PATH", "data/mock_data.json")
	viper.SetDefault("RECORD_STORE_FEED_URL", "http://localhost:5000")
	viper.SetDefault("RECORD_STORE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("RECORD_STORE_CACHE_TTL", "5m")

	// The record store has no returns data, these only drive the placeholder heuristic
	viper.SetDefault("RETURNS_ESTIMATOR", EstimatorFixed)
	viper.SetDefault("RETURNS_FIXED_RATE", 0.07)
	viper.SetDefault("RETURNS_MIN_RATE", 0.05)
	viper.SetDefault("RETURNS_MAX_RATE", 0.10)
	viper.SetDefault("RETURNS_SEED", 0)

	viper.SetDefault("INSIGHT_ENABLED", true)
	viper.SetDefault("INSIGHT_LATENCY", "1s")
	viper.SetDefault("INSIGHT_TIMEOUT", "10s")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/15 * * * *") // every 15 minutes
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment: ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.RecordStore.Driver = strings.ToLower(strings.TrimSpace(config.RecordStore.Driver))
	config.Returns.Estimator = strings.ToLower(strings.TrimSpace(config.Returns.Estimator))
	for i, origin := range config.Cors.AllowedOrigins {
		config.Cors.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	switch c.RecordStore.Driver {
	case DriverFile, DriverPostgres, DriverHTTP:
	default:
		return fmt.Errorf("unknown record store driver %q", c.RecordStore.Driver)
	}

	switch c.Returns.Estimator {
	case EstimatorFixed, EstimatorRandom:
	default:
		return fmt.Errorf("unknown returns estimator %q", c.Returns.Estimator)
	}

	if c.Returns.FixedRate < 0 || c.Returns.FixedRate > 1 {
		return fmt.Errorf("returns fixed rate must be within [0,1], got %v", c.Returns.FixedRate)
	}

	if c.Returns.MinRate < 0 || c.Returns.MaxRate > 1 || c.Returns.MinRate > c.Returns.MaxRate {
		return fmt.Errorf("invalid returns rate interval [%v,%v)", c.Returns.MinRate, c.Returns.MaxRate)
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not get working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("config: trying to load .env from ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
