package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task parsing and storage
	Parser ParserConfig
	Store  StoreConfig

	// Background services
	Reminder ReminderConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig

	// API protection
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ParserConfig struct {
	// Timezone is the IANA zone all relative dates resolve in,
	// e.g. "Europe/Berlin".
	Timezone string
}

type StoreConfig struct {
	// Path is the SQLite database file. ":memory:" is accepted.
	Path string
}

type ReminderConfig struct {
	Enabled     bool
	CronSpec    string
	LeadMinutes int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type AuthConfig struct {
	// Token protects the API when non-empty.
	Token string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parsing and storage
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	if tz := viper.GetString("parser_timezone"); tz != "" {
		cfg.Parser.Timezone = tz
	}
	cfg.Store.Path = viper.GetString("store.path")
	if path := viper.GetString("store_path"); path != "" {
		cfg.Store.Path = path
	}

	// Reminder scanner
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.CronSpec = viper.GetString("reminder.cron_spec")
	cfg.Reminder.LeadMinutes = viper.GetInt("reminder.lead_minutes")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// API protection
	cfg.Auth.Token = viper.GetString("auth.token")
	if token := viper.GetString("api_token"); token != "" {
		cfg.Auth.Token = token
	}
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("parser.timezone", "Europe/Berlin")
	viper.SetDefault("store.path", "data/tasks.db")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.cron_spec", "* * * * *")
	viper.SetDefault("reminder.lead_minutes", 15)

	viper.SetDefault("rate_limit.per_min", 60)
}
