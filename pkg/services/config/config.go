// Package config loads the application configuration from a yaml file with
// environment overrides. Every tunable the pipeline needs lives here; no
// component reads environment state at import time.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/services/mailer"
)

type AnalyticsSettings struct {
	WindowDays int    `mapstructure:"window_days" validate:"gt=0"`
	TopN       int    `mapstructure:"top_n" validate:"gt=0"`
	BottomN    int    `mapstructure:"bottom_n" validate:"gt=0"`
	TrendDays  int    `mapstructure:"trend_days" validate:"gt=0"`
	WeekStart  string `mapstructure:"week_start" validate:"required"`
}

type AllegroSettings struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	AuthURL      string `mapstructure:"auth_url"`
	APIURL       string `mapstructure:"api_url"`
	TokenFile    string `mapstructure:"token_file"`
	FetchLimit   int    `mapstructure:"fetch_limit" validate:"gt=0"`
}

type ReportSettings struct {
	Recipient string `mapstructure:"recipient"`
	Format    string `mapstructure:"format"`
}

type ServerSettings struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type StoreSettings struct {
	DbPath string `mapstructure:"db_path"`
}

type Config struct {
	Analytics AnalyticsSettings `mapstructure:"analytics"`
	Allegro   AllegroSettings   `mapstructure:"allegro"`
	SMTP      mailer.Config     `mapstructure:"smtp"`
	Report    ReportSettings    `mapstructure:"report"`
	Server    ServerSettings    `mapstructure:"server"`
	Store     StoreSettings     `mapstructure:"store"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// AnalyticsConfig converts the settings into the explicit value the
// analytics pass takes.
func (s AnalyticsSettings) AnalyticsConfig() (domain.AnalyticsConfig, error) {
	day, ok := weekdays[strings.ToLower(s.WeekStart)]
	if !ok {
		return domain.AnalyticsConfig{}, fmt.Errorf("unknown week_start %q", s.WeekStart)
	}
	return domain.AnalyticsConfig{
		WindowDays: s.WindowDays,
		TopN:       s.TopN,
		BottomN:    s.BottomN,
		TrendDays:  s.TrendDays,
		WeekStart:  day,
	}, nil
}

func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultAnalyticsConfig()
	v.SetDefault("analytics.window_days", defaults.WindowDays)
	v.SetDefault("analytics.top_n", defaults.TopN)
	v.SetDefault("analytics.bottom_n", defaults.BottomN)
	v.SetDefault("analytics.trend_days", defaults.TrendDays)
	v.SetDefault("analytics.week_start", "monday")
	v.SetDefault("allegro.token_file", "allegro_tokens.json")
	v.SetDefault("allegro.fetch_limit", 100)
	v.SetDefault("report.format", string(domain.FormatText))
	v.SetDefault("store.db_path", "sales-atlas.db")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
}

// Load reads the config file at path. Environment variables prefixed with
// SALES_ATLAS override file values (SALES_ATLAS_SMTP_PASSWORD, etc.).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvPrefix("SALES_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg.Analytics); err != nil {
		return nil, fmt.Errorf("invalid analytics settings: %w", err)
	}
	if _, err := cfg.Analytics.AnalyticsConfig(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
