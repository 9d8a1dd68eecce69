// Package config loads and validates the patentwire service configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultServerPort   = 8080
	defaultServerHost   = "0.0.0.0"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second

	defaultContentBaseURL = "https://api.notion.com"
	defaultContentVersion = "2022-06-28"
	defaultContentTimeout = 15 * time.Second

	defaultSessionCookie = "pw_session"
	defaultVisitorCookie = "pw_visitor"
	defaultSessionTTL    = 15 * time.Minute
)

// Config is the top-level service configuration.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Content  ContentConfig  `yaml:"content"`
	Identity IdentityConfig `yaml:"identity"`
	Redis    RedisConfig    `yaml:"redis"`
	Guard    GuardConfig    `yaml:"guard"`
	Session  SessionConfig  `yaml:"session"`
}

// ServiceConfig holds HTTP server settings.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Debug        bool          `yaml:"debug"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ContentConfig holds the headless content source settings. Token and
// DatabaseID may be left empty, in which case the gateway serves its
// built-in sample set.
type ContentConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Token      string        `yaml:"token"`
	DatabaseID string        `yaml:"database_id"`
	Version    string        `yaml:"version"`
	Timeout    time.Duration `yaml:"timeout"`
}

// IdentityConfig holds the external identity provider settings.
type IdentityConfig struct {
	BaseURL   string `yaml:"base_url"`
	AnonKey   string `yaml:"anon_key"`
	JWTSecret string `yaml:"jwt_secret"`
}

// RedisConfig holds optional Redis settings for the viewed-article store.
// An empty address selects the in-memory store.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GuardConfig holds route guard settings.
type GuardConfig struct {
	ProtectedPrefixes []string `yaml:"protected_prefixes"`
	HomePath          string   `yaml:"home_path"`
	LoginPath         string   `yaml:"login_path"`
	SignupPath        string   `yaml:"signup_path"`
}

// SessionConfig holds cookie names and the UI session cache TTL.
type SessionConfig struct {
	CookieName        string        `yaml:"cookie_name"`
	VisitorCookieName string        `yaml:"visitor_cookie_name"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Service.Host == "" {
		return errors.New("service.host is required")
	}
	if c.Service.Port <= 0 {
		return errors.New("service.port is required and must be positive")
	}
	if c.Identity.BaseURL != "" && c.Identity.JWTSecret == "" {
		return errors.New("identity.jwt_secret is required when identity.base_url is set")
	}
	if c.Guard.HomePath == "" {
		return errors.New("guard.home_path is required")
	}
	return nil
}

// Load reads the configuration file at path, applies defaults and
// environment overrides, and validates the result. A missing file is not
// an error; defaults and environment variables alone are enough to run
// against the sample content set.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.setDefaults()
	cfg.overrideFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "patentwire"
	}
	if c.Service.Host == "" {
		c.Service.Host = defaultServerHost
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServerPort
	}
	if c.Service.ReadTimeout == 0 {
		c.Service.ReadTimeout = defaultReadTimeout
	}
	if c.Service.WriteTimeout == 0 {
		c.Service.WriteTimeout = defaultWriteTimeout
	}
	if c.Service.IdleTimeout == 0 {
		c.Service.IdleTimeout = defaultIdleTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Content.BaseURL == "" {
		c.Content.BaseURL = defaultContentBaseURL
	}
	if c.Content.Version == "" {
		c.Content.Version = defaultContentVersion
	}
	if c.Content.Timeout == 0 {
		c.Content.Timeout = defaultContentTimeout
	}
	if len(c.Guard.ProtectedPrefixes) == 0 {
		c.Guard.ProtectedPrefixes = []string{"/profile"}
	}
	if c.Guard.HomePath == "" {
		c.Guard.HomePath = "/"
	}
	if c.Guard.LoginPath == "" {
		c.Guard.LoginPath = "/login"
	}
	if c.Guard.SignupPath == "" {
		c.Guard.SignupPath = "/signup"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookie
	}
	if c.Session.VisitorCookieName == "" {
		c.Session.VisitorCookieName = defaultVisitorCookie
	}
	if c.Session.CacheTTL == 0 {
		c.Session.CacheTTL = defaultSessionTTL
	}
}

func (c *Config) overrideFromEnv() {
	if v := os.Getenv("PATENTWIRE_HOST"); v != "" {
		c.Service.Host = v
	}
	if v := os.Getenv("PATENTWIRE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Service.Port = port
		}
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		c.Service.Debug = parseBool(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NOTION_TOKEN"); v != "" {
		c.Content.Token = v
	}
	if v := os.Getenv("NOTION_DATABASE_ID"); v != "" {
		c.Content.DatabaseID = v
	}
	if v := os.Getenv("NOTION_BASE_URL"); v != "" {
		c.Content.BaseURL = v
	}
	if v := os.Getenv("IDENTITY_BASE_URL"); v != "" {
		c.Identity.BaseURL = v
	}
	if v := os.Getenv("IDENTITY_ANON_KEY"); v != "" {
		c.Identity.AnonKey = v
	}
	if v := os.Getenv("IDENTITY_JWT_SECRET"); v != "" {
		c.Identity.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
}

// Address returns the host:port pair the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Service.Host, c.Service.Port)
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}
