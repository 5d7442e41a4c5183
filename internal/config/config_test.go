package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/telemed_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SlotDurationMinutes != 45 {
		t.Errorf("expected slot duration 45, got %d", cfg.SlotDurationMinutes)
	}
	if cfg.MinSlotMinutes != 60 {
		t.Errorf("expected minimum slot duration 60, got %d", cfg.MinSlotMinutes)
	}
	if cfg.LunchBreakStart != "12:00" || cfg.LunchBreakEnd != "14:00" {
		t.Errorf("expected lunch break 12:00-14:00, got %s-%s", cfg.LunchBreakStart, cfg.LunchBreakEnd)
	}
	if cfg.LeadTimeMinutes != 5 {
		t.Errorf("expected lead time 5, got %d", cfg.LeadTimeMinutes)
	}
	if cfg.TimelineWindowDays != 30 {
		t.Errorf("expected timeline window 30, got %d", cfg.TimelineWindowDays)
	}
	if cfg.LookaheadDays != 7 {
		t.Errorf("expected lookahead 7, got %d", cfg.LookaheadDays)
	}
	if cfg.LastSessionsCount != 4 {
		t.Errorf("expected last sessions 4, got %d", cfg.LastSessionsCount)
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is empty")
	}
}

func TestValidate_SigningKeyOutsideDev(t *testing.T) {
	cfg := &Config{
		Env:                 "production",
		SlotDurationMinutes: 45,
		MinSlotMinutes:      60,
		TimelineWindowDays:  30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing signing key in production")
	}

	cfg.AuthSigningKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_MinSlotBelowDuration(t *testing.T) {
	cfg := &Config{
		Env:                 "development",
		SlotDurationMinutes: 45,
		MinSlotMinutes:      30,
		TimelineWindowDays:  30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when minimum slot duration is below slot duration")
	}
}
