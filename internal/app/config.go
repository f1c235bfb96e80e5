// Package app provides the application container wiring all dependencies
// and services.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig is the application configuration.
type AppConfig struct {
	File     string         `yaml:"-"` // config file path, never serialized
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	// RunMode gin run mode
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP listen address
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout read timeout in seconds
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout write timeout in seconds
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// ContextTimeout per-request core timeout in seconds
	ContextTimeout int `yaml:"context-timeout" default:"60"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level log level, see zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File log file path, empty for stderr
	File string `yaml:"file"`
	// Production enables JSON output
	Production bool `yaml:"production" default:"true"`
}

// DatabaseConfig configures the MongoDB connection.
type DatabaseConfig struct {
	// URI MongoDB connection string
	URI string `yaml:"uri" default:"mongodb://localhost:27017"`
	// Name database name
	Name string `yaml:"name" default:"notes"`
	// ConnectTimeout connection timeout, e.g. 10s
	ConnectTimeout string `yaml:"connect-timeout" default:"10s"`
}

// UserConfig configures account behavior.
type UserConfig struct {
	// RegisterIsEnable toggles signup
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// SecurityConfig holds the secrets.
type SecurityConfig struct {
	// AuthTokenKey JWT signing key
	AuthTokenKey string `yaml:"auth-token-key" default:"notes-service-auth-token"`
	// TokenExpiry token validity, e.g. 24h
	TokenExpiry string `yaml:"token-expiry" default:"24h"`
	// SecretSaltKey server-side salt keying the password hash
	SecretSaltKey string `yaml:"secret-salt-key" default:"notes-service-secret-salt"`
}

// ConnectTimeoutDuration parses the connect timeout with a safe default.
func (c DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ConnectTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// TokenExpiryDuration parses the token expiry with a safe default.
func (c SecurityConfig) TokenExpiryDuration() time.Duration {
	d, err := time.ParseDuration(c.TokenExpiry)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// LoadConfig reads the YAML file at path, fills defaults and returns the
// populated config together with the resolved absolute path.
func LoadConfig(path string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "resolve config path")
	}

	data, err := os.ReadFile(realpath)
	if err != nil {
		return nil, "", errors.Wrap(err, "read config file")
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, "", err
	}
	cfg.File = realpath
	return cfg, realpath, nil
}

// ParseConfig unmarshals cfg bytes with defaults applied.
func ParseConfig(data []byte) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "apply config defaults")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}
	return cfg, nil
}
