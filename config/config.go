package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Collaborators
	Database       DatabaseConfig
	OpenAI         OpenAIConfig
	GoogleCalendar GoogleCalendarConfig

	Breakdown BreakdownConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port       int
	Mode       string
	CORSOrigin string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig selects the session store backing.
// Driver is one of: sqlite (default), postgres, memory.
type DatabaseConfig struct {
	Driver string
	Path   string // sqlite file path
	DSN    string // postgres connection string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// IsConfigured reports whether a usable API key is present. Placeholder
// values copied from .env.example ("your-...") count as unconfigured.
func (c OpenAIConfig) IsConfigured() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && !strings.HasPrefix(key, "your-")
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type BreakdownConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigin = viper.GetString("http_server.cors_origin")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.Path = viper.GetString("database.path")
	cfg.Database.DSN = viper.GetString("database.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.Driver = "postgres"
		cfg.Database.DSN = dsn
	}

	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	cfg.Breakdown.RateLimitPerMin = viper.GetInt("breakdown.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.cors_origin", "http://localhost:3000")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "focus.db")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("breakdown.rate_limit_per_min", 20)
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
