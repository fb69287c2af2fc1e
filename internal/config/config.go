package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"starluck/internal/ephemeris"
	"starluck/internal/houses"
)

const envPrefix = "STARLUCK"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Ephemeris EphemerisConfig
	App       AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port        int
	GinMode     string // debug, release, test
	APIKey      string // empty disables the X-API-Key check
	CorsOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// EphemerisConfig selects the position backend
type EphemerisConfig struct {
	Mode      string // auto, analytic, table
	DataPath  string // SQLite table written by ephemgen
	CacheSize int    // cached positions, 0 disables the cache
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	HouseSystem       string // default house system: PLACIDUS, WHOLE, EQUAL
	MaxScanSamples    int    // upper bound on transit scan samples per request
	ForecastDays      int    // default transit window
	ForecastStepHours int    // default transit step
}

// Load reads configuration from a .env file, config.yaml and environment
// variables, in increasing priority.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.starluck")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFile reads configuration from one YAML file plus environment variables
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// STARLUCK_SERVER_APIKEY overrides server.apiKey
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("server.apikey", "")
	v.SetDefault("server.corsorigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ephemeris.mode", "auto")
	v.SetDefault("ephemeris.datapath", "")
	v.SetDefault("ephemeris.cachesize", 4096)
	v.SetDefault("app.housesystem", "PLACIDUS")
	v.SetDefault("app.maxscansamples", 2000)
	v.SetDefault("app.forecastdays", 14)
	v.SetDefault("app.forecaststephours", 24)
}

// Validate checks the values that are parsed later on
func (c *Config) Validate() error {
	if _, err := c.DefaultHouseSystem(); err != nil {
		return fmt.Errorf("invalid app.houseSystem: %w", err)
	}
	if _, err := c.EphemerisOptions(); err != nil {
		return fmt.Errorf("invalid ephemeris.mode: %w", err)
	}
	if c.App.MaxScanSamples <= 0 {
		return fmt.Errorf("app.maxScanSamples must be positive, got %d", c.App.MaxScanSamples)
	}
	if c.App.ForecastDays <= 0 || c.App.ForecastStepHours <= 0 {
		return fmt.Errorf("app.forecastDays and app.forecastStepHours must be positive")
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// DefaultHouseSystem returns the house system used when a request names none
func (c *Config) DefaultHouseSystem() (houses.System, error) {
	return houses.ParseSystem(c.App.HouseSystem)
}

// EphemerisOptions converts the ephemeris section for ephemeris.Open
func (c *Config) EphemerisOptions() (ephemeris.Options, error) {
	mode, err := ephemeris.ParseMode(c.Ephemeris.Mode)
	if err != nil {
		return ephemeris.Options{}, err
	}
	return ephemeris.Options{
		Mode:      mode,
		DataPath:  c.Ephemeris.DataPath,
		CacheSize: c.Ephemeris.CacheSize,
	}, nil
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
