// Package config reads the configuration from the environment and an
// optional configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var (
	ErrInvalidPort      = errors.New("PORT must be between 1 and 65535")
	ErrInvalidURL       = errors.New("API_URL must be an absolute URL with scheme and host")
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be one of human, json")
	ErrInvalidGinMode   = errors.New("GIN_MODE must be one of debug, release, test")
)

// Config is the configuration of the backend.
type Config struct {
	Port             int    `mapstructure:"port"`
	APIURL           string `mapstructure:"api_url"`
	DataDir          string `mapstructure:"data_dir"`
	DBFile           string `mapstructure:"db_file"`
	LogFormat        string `mapstructure:"log_format"`
	LogLevel         string `mapstructure:"log_level"`
	GinMode          string `mapstructure:"gin_mode"`
	CORSAllowOrigins string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool   `mapstructure:"enable_pprof"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("db_file", "finance.db")
	v.SetDefault("log_format", "")
	v.SetDefault("log_level", "")

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault("gin_mode", gin.ReleaseMode)
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
}

// Load reads the configuration. Environment variables take precedence over
// the values in the file at path. An empty path only uses the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, c.Validate()
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}

	if _, err := c.URL(); err != nil {
		return err
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return ErrInvalidGinMode
	}
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	return u, nil
}

// DSN returns the path of the SQLite database.
func (c Config) DSN() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// Level returns the log level. If none is configured, it is debug in gin's
// debug mode and info otherwise.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		if c.GinMode == gin.DebugMode {
			return zerolog.DebugLevel, nil
		}
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return level, nil
}

// HumanLogs reports if logs are written in human readable format. If the
// format is not set, it is human readable for development and JSON for
// release.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}
	return c.LogFormat == "human"
}

// AllowOrigins returns the origins allowed for CORS requests. CORS is
// disabled when the list is empty.
func (c Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}
