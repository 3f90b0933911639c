package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	CORS       CORSConfig

	// Planner specifics
	Agent          AgentConfig
	Balance        BalanceConfig
	Advisory       AdvisoryConfig
	Upload         UploadConfig
	Recommendation RecommendationConfig
	Schedule       ScheduleConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
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

type AuthConfig struct {
	// JWTSecret verifies bearer tokens. Empty disables auth.
	JWTSecret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AgentConfig struct {
	URL         string
	Timeout     time.Duration
	StudentName string
}

type BalanceConfig struct {
	OverloadAcademics      int
	OverloadMinWellness    int
	LightLoadTotal         int
	LightLoadMinWellness   int
	BurnoutHighAcademics   int
	BurnoutMediumAcademics int
}

type AdvisoryConfig struct {
	SuggestionDelay time.Duration
	CompletionDelay time.Duration
	WarningDelay    time.Duration
	HistorySize     int
}

type UploadConfig struct {
	RateLimitPerMin int
	MaxSizeMB       int64
}

type RecommendationConfig struct {
	RetentionDays int
	CleanupCron   string
}

type ScheduleConfig struct {
	Timezone string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
	// Kinds limits forwarding to these advisory kinds. Empty forwards all.
	Kinds []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

// Retention is RetentionDays as a duration.
func (c RecommendationConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// MaxSize is MaxSizeMB in bytes.
func (c UploadConfig) MaxSize() int64 {
	return c.MaxSizeMB << 20
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

	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Planner specifics
	cfg.Agent.URL = viper.GetString("agent.url")
	cfg.Agent.Timeout = viper.GetDuration("agent.timeout")
	cfg.Agent.StudentName = viper.GetString("agent.student_name")

	cfg.Balance.OverloadAcademics = viper.GetInt("balance.overload_academics")
	cfg.Balance.OverloadMinWellness = viper.GetInt("balance.overload_min_wellness")
	cfg.Balance.LightLoadTotal = viper.GetInt("balance.light_load_total")
	cfg.Balance.LightLoadMinWellness = viper.GetInt("balance.light_load_min_wellness")
	cfg.Balance.BurnoutHighAcademics = viper.GetInt("balance.burnout_high_academics")
	cfg.Balance.BurnoutMediumAcademics = viper.GetInt("balance.burnout_medium_academics")

	cfg.Advisory.SuggestionDelay = viper.GetDuration("advisory.suggestion_delay")
	cfg.Advisory.CompletionDelay = viper.GetDuration("advisory.completion_delay")
	cfg.Advisory.WarningDelay = viper.GetDuration("advisory.warning_delay")
	cfg.Advisory.HistorySize = viper.GetInt("advisory.history_size")

	cfg.Upload.RateLimitPerMin = viper.GetInt("upload.rate_limit_per_min")
	cfg.Upload.MaxSizeMB = viper.GetInt64("upload.max_size_mb")

	cfg.Recommendation.RetentionDays = viper.GetInt("recommendation.retention_days")
	cfg.Recommendation.CleanupCron = viper.GetString("recommendation.cleanup_cron")

	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")

	// Integrations
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.Kinds = splitList(viper.GetString("telegram.kinds"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.Timezone == "" {
		cfg.GoogleCalendar.Timezone = cfg.Schedule.Timezone
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d is out of range", c.HTTPServer.Port))
	}
	if c.Agent.URL == "" {
		errs = append(errs, errors.New("agent.url is required"))
	}
	if c.Upload.MaxSizeMB <= 0 {
		errs = append(errs, errors.New("upload.max_size_mb must be positive"))
	}
	if c.Recommendation.RetentionDays <= 0 {
		errs = append(errs, errors.New("recommendation.retention_days must be positive"))
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		errs = append(errs, errors.New("telegram.chat_id is required when telegram.bot_token is set"))
	}
	return errors.Join(errs...)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("agent.url", "http://localhost:8000")
	viper.SetDefault("agent.timeout", "10s")
	viper.SetDefault("agent.student_name", "Student")

	viper.SetDefault("balance.overload_academics", 8)
	viper.SetDefault("balance.overload_min_wellness", 2)
	viper.SetDefault("balance.light_load_total", 5)
	viper.SetDefault("balance.light_load_min_wellness", 1)
	viper.SetDefault("balance.burnout_high_academics", 10)
	viper.SetDefault("balance.burnout_medium_academics", 6)

	viper.SetDefault("advisory.suggestion_delay", "1s")
	viper.SetDefault("advisory.completion_delay", "500ms")
	viper.SetDefault("advisory.warning_delay", "800ms")
	viper.SetDefault("advisory.history_size", 50)

	viper.SetDefault("upload.rate_limit_per_min", 10)
	viper.SetDefault("upload.max_size_mb", 10)

	viper.SetDefault("recommendation.retention_days", 30)
	viper.SetDefault("recommendation.cleanup_cron", "0 3 * * *")

	viper.SetDefault("schedule.timezone", "Local")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// splitList splits a comma separated value, since viper does not parse
// arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
