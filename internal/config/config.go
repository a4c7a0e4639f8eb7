// Package config loads runtime settings from defaults, an optional
// overlaygen.yaml, a .env file, and OVERLAYGEN_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "OVERLAYGEN"

type Config struct {
	API     APIConfig
	Command CommandConfig
	Server  ServerConfig
	Output  OutputConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string
	// Timeout bounds each request; zero disables it.
	Timeout time.Duration
}

type CommandConfig struct {
	// Endpoint is printed in generated curl commands. Empty means
	// BaseURL + /process_custom.
	Endpoint string
}

type ServerConfig struct {
	Addr string
}

type OutputConfig struct {
	Dir string
}

type LogConfig struct {
	Level       string
	Development bool
}

// Option adjusts loading.
type Option func(*loader)

type loader struct {
	v        *viper.Viper
	envFiles []string
	paths    []string
	file     string
}

// WithConfigFile reads settings from an explicit file instead of searching.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.file = strings.TrimSpace(path)
	}
}

// WithSearchPaths replaces the directories searched for overlaygen.yaml.
func WithSearchPaths(paths ...string) Option {
	return func(l *loader) {
		l.paths = paths
	}
}

// WithEnvFiles replaces the dotenv files loaded before reading the
// environment. Missing files are ignored.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.envFiles = files
	}
}

// Load resolves the configuration.
func Load(options ...Option) (*Config, error) {
	l := &loader{
		v:        viper.New(),
		envFiles: []string{".env"},
		paths:    []string{".", "./config"},
	}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}

	for _, file := range l.envFiles {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(file); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", file, err)
		}
	}

	v := l.v
	v.SetDefault("api.base_url", "http://localhost:5001")
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("command.endpoint", "")
	v.SetDefault("server.addr", ":8085")
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", l.file, err)
		}
	} else {
		v.SetConfigName("overlaygen")
		v.SetConfigType("yaml")
		for _, p := range l.paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read overlaygen.yaml: %w", err)
			}
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Command: CommandConfig{
			Endpoint: v.GetString("command.endpoint"),
		},
		Server: ServerConfig{
			Addr: v.GetString("server.addr"),
		},
		Output: OutputConfig{
			Dir: v.GetString("output.dir"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
	}
	if cfg.API.Timeout < 0 {
		return nil, fmt.Errorf("config: api.timeout must not be negative, got %s", cfg.API.Timeout)
	}
	return cfg, nil
}

// CommandEndpoint returns the URL printed in generated curl commands.
func (c *Config) CommandEndpoint() string {
	if c.Command.Endpoint != "" {
		return c.Command.Endpoint
	}
	return c.API.BaseURL + "/process_custom"
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
