package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// Config holds the optional tuning read from a --config file. The API key
// and listen port are deliberately absent: they are per-process values
// given on the command line.
type Config struct {
	Logging LoggingConfig `json:"logging" yaml:"logging" toml:"logging" mapstructure:"logging"`
	HTTP    HTTPConfig    `json:"http" yaml:"http" toml:"http" mapstructure:"http"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" toml:"format" mapstructure:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty" mapstructure:"file"`
}

// HTTPConfig contains HTTP server tuning
type HTTPConfig struct {
	Host           string `json:"host" yaml:"host" toml:"host" mapstructure:"host"`
	ReadTimeoutMs  int    `json:"readTimeoutMs" yaml:"readTimeoutMs" toml:"readTimeoutMs" mapstructure:"readTimeoutMs"`
	WriteTimeoutMs int    `json:"writeTimeoutMs" yaml:"writeTimeoutMs" toml:"writeTimeoutMs" mapstructure:"writeTimeoutMs"`
	IdleTimeoutMs  int    `json:"idleTimeoutMs" yaml:"idleTimeoutMs" toml:"idleTimeoutMs" mapstructure:"idleTimeoutMs"`
	MaxBodyBytes   int64  `json:"maxBodyBytes" yaml:"maxBodyBytes" toml:"maxBodyBytes" mapstructure:"maxBodyBytes"`
	Compress       bool   `json:"compress" yaml:"compress" toml:"compress" mapstructure:"compress"`
	CORS           bool   `json:"cors" yaml:"cors" toml:"cors" mapstructure:"cors"`
}

// ReadTimeout returns the read timeout as a duration.
func (h HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(h.ReadTimeoutMs) * time.Millisecond
}

// WriteTimeout returns the write timeout as a duration.
func (h HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(h.WriteTimeoutMs) * time.Millisecond
}

// IdleTimeout returns the keep-alive idle timeout as a duration.
func (h HTTPConfig) IdleTimeout() time.Duration {
	return time.Duration(h.IdleTimeoutMs) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "human",
		},
		HTTP: HTTPConfig{
			Host:           "0.0.0.0",
			ReadTimeoutMs:  15000,
			WriteTimeoutMs: 15000,
			IdleTimeoutMs:  60000,
			MaxBodyBytes:   1 << 20,
			Compress:       true,
			CORS:           true,
		},
	}
}

// Load reads the config file at path. An empty path yields the defaults.
// JSON and YAML go through viper; TOML is decoded strictly so that unknown
// keys are reported.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	var (
		cfg *Config
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".yaml", ".yml":
		cfg, err = loadViper(path)
	case ".toml":
		cfg, err = loadTOML(path)
	default:
		return nil, &ConfigError{Field: "file", Message: fmt.Sprintf("unsupported config format %q", ext)}
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadViper(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("http.host", d.HTTP.Host)
	v.SetDefault("http.readTimeoutMs", d.HTTP.ReadTimeoutMs)
	v.SetDefault("http.writeTimeoutMs", d.HTTP.WriteTimeoutMs)
	v.SetDefault("http.idleTimeoutMs", d.HTTP.IdleTimeoutMs)
	v.SetDefault("http.maxBodyBytes", d.HTTP.MaxBodyBytes)
	v.SetDefault("http.compress", d.HTTP.Compress)
	v.SetDefault("http.cors", d.HTTP.CORS)
}

func loadTOML(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, &ConfigError{Field: keys[0], Message: "unknown key (all unknown: " + strings.Join(keys, ", ") + ")"}
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}

	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}

	if c.HTTP.ReadTimeoutMs < 0 || c.HTTP.WriteTimeoutMs < 0 || c.HTTP.IdleTimeoutMs < 0 {
		return &ConfigError{Field: "http", Message: "timeouts must not be negative"}
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return &ConfigError{Field: "http.maxBodyBytes", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
