package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	AuthIssuer     string `mapstructure:"AUTH_ISSUER"`
	AuthSigningKey string `mapstructure:"AUTH_SIGNING_KEY"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Scheduling knobs. Defaults match the portal's original behavior;
	// all are system-global, not per-doctor.
	SlotDurationMinutes int    `mapstructure:"SLOT_DURATION_MINUTES"`
	MinSlotMinutes      int    `mapstructure:"MIN_SLOT_DURATION_MINUTES"`
	LunchBreakStart     string `mapstructure:"LUNCH_BREAK_START"`
	LunchBreakEnd       string `mapstructure:"LUNCH_BREAK_END"`
	LeadTimeMinutes     int    `mapstructure:"LEAD_TIME_MINUTES"`
	TimelineWindowDays  int    `mapstructure:"TIMELINE_WINDOW_DAYS"`
	LookaheadDays       int    `mapstructure:"LOOKAHEAD_DAYS"`
	LastSessionsCount   int    `mapstructure:"LAST_SESSIONS_COUNT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("SLOT_DURATION_MINUTES", 45)
	v.SetDefault("MIN_SLOT_DURATION_MINUTES", 60)
	v.SetDefault("LUNCH_BREAK_START", "12:00")
	v.SetDefault("LUNCH_BREAK_END", "14:00")
	v.SetDefault("LEAD_TIME_MINUTES", 5)
	v.SetDefault("TIMELINE_WINDOW_DAYS", 30)
	v.SetDefault("LOOKAHEAD_DAYS", 7)
	v.SetDefault("LAST_SESSIONS_COUNT", 4)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
		"CORS_ORIGINS", "AUTH_ISSUER", "AUTH_SIGNING_KEY",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"SLOT_DURATION_MINUTES", "MIN_SLOT_DURATION_MINUTES",
		"LUNCH_BREAK_START", "LUNCH_BREAK_END", "LEAD_TIME_MINUTES",
		"TIMELINE_WINDOW_DAYS", "LOOKAHEAD_DAYS", "LAST_SESSIONS_COUNT",
	} {
		v.BindEnv(key)
	}

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run with.
func (c *Config) Validate() error {
	if !c.IsDev() && c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY is required outside development")
	}
	if c.SlotDurationMinutes <= 0 {
		return fmt.Errorf("SLOT_DURATION_MINUTES must be positive, got %d", c.SlotDurationMinutes)
	}
	if c.MinSlotMinutes < c.SlotDurationMinutes {
		return fmt.Errorf("MIN_SLOT_DURATION_MINUTES (%d) must be at least SLOT_DURATION_MINUTES (%d)",
			c.MinSlotMinutes, c.SlotDurationMinutes)
	}
	if c.LeadTimeMinutes < 0 {
		return fmt.Errorf("LEAD_TIME_MINUTES must not be negative, got %d", c.LeadTimeMinutes)
	}
	if c.TimelineWindowDays <= 0 {
		return fmt.Errorf("TIMELINE_WINDOW_DAYS must be positive, got %d", c.TimelineWindowDays)
	}
	return nil
}
