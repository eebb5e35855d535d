package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ferdiebergado/notekit/internal/pkg/env"
	timex "github.com/ferdiebergado/notekit/internal/pkg/time"
)

const maskChar = "*"

var ErrMissingKey = errors.New("config: security key is not set")

type App struct {
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
	Key      string `json:"-" env:"KEY"`
}

func (a *App) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", a.Env),
		slog.String("log_level", a.LogLevel),
		slog.String("key", maskChar),
	)
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty" env:"ALLOWED_ORIGIN"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	Host            string         `json:"host,omitempty" env:"DB_HOST"`
	Port            int            `json:"port,omitempty" env:"DB_PORT"`
	User            string         `json:"-" env:"DB_USER"`
	Pass            string         `json:"-" env:"DB_PASS"`
	Name            string         `json:"name,omitempty" env:"DB_NAME"`
	SSLMode         string         `json:"ssl_mode,omitempty" env:"DB_SSLMODE"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

func (d *DB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", d.Driver),
		slog.String("host", d.Host),
		slog.Int("port", d.Port),
		slog.String("user", maskChar),
		slog.String("pass", maskChar),
		slog.String("name", d.Name),
		slog.String("ssl_mode", d.SSLMode),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Int("max_idle_conns", d.MaxIdleConns),
	)
}

// JWT holds the token service settings. Durations are decoded from strings such as "15m".
type JWT struct {
	Algorithm  string         `json:"algorithm,omitempty"`
	Issuer     string         `json:"issuer,omitempty"`
	JTILength  uint32         `json:"jti_length,omitempty"`
	AccessTTL  timex.Duration `json:"access_ttl,omitempty"`
	RefreshTTL timex.Duration `json:"refresh_ttl,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	Argon2 *Argon2 `json:"argon2,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.Any("argon2", c.Argon2),
	)
}

// Load reads the JSON config file and applies environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := env.OverrideStruct(cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	if cfg.App.Key == "" {
		return nil, ErrMissingKey
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}
