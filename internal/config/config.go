package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendFile   = "file"
	SessionBackendSQLite = "sqlite"
)

// Config is the fully resolved application configuration.
type Config struct {
	Server  ServerConfig
	Remote  RemoteConfig
	Session SessionConfig
	Views   ViewsConfig
	Media   MediaConfig
	Misc    MiscConfig
}

type ServerConfig struct {
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutDownTimeout    time.Duration
	RequestTimeout     time.Duration
	CORSAllowedOrigins string
}

// RemoteConfig points at the tour-booking REST service.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Backend         string
	FilePath        string
	PersistInterval time.Duration
}

// ViewsConfig holds the fixed page size of every paginated view.
type ViewsConfig struct {
	UsersPageSize        int
	AgentsPageSize       int
	ToursPageSize        int
	CustomersPageSize    int
	TransactionsPageSize int
	AgentDetailsPageSize int
}

type MediaConfig struct {
	MaxUploadBytes int64
}

type MiscConfig struct {
	GinMode   string
	LogLevel  string
	LogFormat string
	UIPath    string
}

// LoadConfig reads config.yaml (optional), .env (optional) and TOURDESK_* env vars.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.WithComponent("config").Warnf("cannot read .env file: %v", err)
	}

	confPath := getEnvOrDefault("TOURDESK_CONFIG_PATH", "./config")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(confPath)
	setDefaults(v)

	v.SetEnvPrefix("TOURDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
		logger.WithComponent("config").Info("No config file found, using defaults and env vars")
	}

	port, err := getEnvOrViperPort(v, "PORT", "server.port")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               port,
			ReadTimeout:        v.GetDuration("server.read_timeout"),
			WriteTimeout:       v.GetDuration("server.write_timeout"),
			IdleTimeout:        v.GetDuration("server.idle_timeout"),
			ShutDownTimeout:    v.GetDuration("server.shutdown_timeout"),
			RequestTimeout:     v.GetDuration("server.request_timeout"),
			CORSAllowedOrigins: v.GetString("server.cors_allowed_origins"),
		},
		Remote: RemoteConfig{
			BaseURL: strings.TrimRight(v.GetString("remote.base_url"), "/"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Session: SessionConfig{
			Backend:         strings.ToLower(v.GetString("session.backend")),
			FilePath:        v.GetString("session.file_path"),
			PersistInterval: v.GetDuration("session.persist_interval"),
		},
		Views: ViewsConfig{
			UsersPageSize:        v.GetInt("views.users_page_size"),
			AgentsPageSize:       v.GetInt("views.agents_page_size"),
			ToursPageSize:        v.GetInt("views.tours_page_size"),
			CustomersPageSize:    v.GetInt("views.customers_page_size"),
			TransactionsPageSize: v.GetInt("views.transactions_page_size"),
			AgentDetailsPageSize: v.GetInt("views.agent_details_page_size"),
		},
		Media: MediaConfig{
			MaxUploadBytes: v.GetInt64("media.max_upload_bytes"),
		},
		Misc: MiscConfig{
			GinMode:   v.GetString("misc.gin_mode"),
			LogLevel:  v.GetString("misc.log_level"),
			LogFormat: v.GetString("misc.log_format"),
			UIPath:    v.GetString("misc.ui_path"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Session.Backend != SessionBackendMemory {
		if err := os.MkdirAll(filepath.Dir(cfg.Session.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.request_timeout", "15s")
	v.SetDefault("server.cors_allowed_origins", "*")

	v.SetDefault("remote.base_url", "http://localhost:8000")
	v.SetDefault("remote.timeout", "20s")

	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.file_path", "./config/data/session.json")
	v.SetDefault("session.persist_interval", "2s")

	v.SetDefault("views.users_page_size", 15)
	v.SetDefault("views.agents_page_size", 9)
	v.SetDefault("views.tours_page_size", 9)
	v.SetDefault("views.customers_page_size", 15)
	v.SetDefault("views.transactions_page_size", 10)
	v.SetDefault("views.agent_details_page_size", 10)

	v.SetDefault("media.max_upload_bytes", 5<<20)

	v.SetDefault("misc.gin_mode", "release")
	v.SetDefault("misc.log_level", "info")
	v.SetDefault("misc.log_format", "text")
	v.SetDefault("misc.ui_path", "./ui")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server read/write/idle timeouts must be positive")
	}
	if c.Server.ShutDownTimeout <= 0 {
		return errors.New("server shutdown timeout must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("server request timeout must be positive")
	}

	if c.Remote.BaseURL == "" {
		return errors.New("remote base url is required")
	}
	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid remote base url: %q", c.Remote.BaseURL)
	}
	if c.Remote.Timeout <= 0 {
		return errors.New("remote timeout must be positive")
	}

	switch c.Session.Backend {
	case SessionBackendMemory:
	case SessionBackendFile, SessionBackendSQLite:
		if c.Session.FilePath == "" {
			return fmt.Errorf("session backend %s requires a file path", c.Session.Backend)
		}
	default:
		return fmt.Errorf("unknown session backend: %s (supported: %s, %s, %s)",
			c.Session.Backend, SessionBackendMemory, SessionBackendFile, SessionBackendSQLite)
	}
	if c.Session.Backend == SessionBackendFile && c.Session.PersistInterval <= 0 {
		return errors.New("session persist interval must be positive")
	}

	sizes := map[string]int{
		"users":         c.Views.UsersPageSize,
		"agents":        c.Views.AgentsPageSize,
		"tours":         c.Views.ToursPageSize,
		"customers":     c.Views.CustomersPageSize,
		"transactions":  c.Views.TransactionsPageSize,
		"agent details": c.Views.AgentDetailsPageSize,
	}
	for name, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%s page size must be positive, got %d", name, size)
		}
	}

	if c.Media.MaxUploadBytes <= 0 {
		return errors.New("media max upload bytes must be positive")
	}

	return nil
}

func getEnvOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// getEnvOrViperPort prefers a bare env var (PORT on most PaaS) over the viper key.
func getEnvOrViperPort(v *viper.Viper, envKey, viperKey string) (int, error) {
	if raw := os.Getenv(envKey); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", envKey, raw, err)
		}
		return port, nil
	}
	return v.GetInt(viperKey), nil
}
