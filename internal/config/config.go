// Package config loads lookup-irish configuration from TOML files with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	EnvConfig   = "IRISH_CONFIG"
	EnvHost     = "IRISH_HOST"
	EnvPort     = "IRISH_PORT"
	EnvDataDir  = "IRISH_DATA_DIR"
	EnvLogLevel = "IRISH_LOG_LEVEL"
	EnvOrigins  = "IRISH_CORS_ORIGINS"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Logging  LoggingConfig  `toml:"logging"`
	CORS     CORSConfig     `toml:"cors"`
	Examples ExamplesConfig `toml:"examples"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// Workers bounds concurrent analyses in batch requests.
	Workers int `toml:"workers"`
	// MaxBatch caps the number of words in one batch request.
	MaxBatch int `toml:"max_batch"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the lexicon files.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// CORSConfig holds CORS policy settings.
type CORSConfig struct {
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// ExamplesConfig names the nouns shown in front of adjective forms.
type ExamplesConfig struct {
	Neutral             string `toml:"neutral"`
	StrongPlural        string `toml:"strong_plural"`
	PluralWeakConsonant string `toml:"plural_weak_consonant"`
	Masculine           string `toml:"masculine"`
	Feminine            string `toml:"feminine"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     8080,
			Workers:  4,
			MaxBatch: 200,
		},
		Data: DataConfig{Dir: "data"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		CORS: CORSConfig{
			Origins:        []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			MaxAge:         3600,
		},
		Examples: ExamplesConfig{
			Neutral:             "rud",
			StrongPlural:        "rudaí",
			PluralWeakConsonant: "leabhair",
			Masculine:           "fear",
			Feminine:            "bean",
		},
	}
}

// Load reads each existing file in order over the defaults (later files
// override earlier ones), then applies environment overrides. Missing
// files are skipped.
func Load(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	if p := os.Getenv(EnvConfig); p != "" {
		paths = append(paths, p)
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvOrigins); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.Origins = origins
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data dir must be set")
	}
	if c.Server.Workers <= 0 {
		c.Server.Workers = 1
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	return nil
}
