package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidYAML_PopulatesAllFields(t *testing.T) {
	path := writeConfig(t, `analytics:
  window_days: 14
  top_n: 5
  bottom_n: 2
  trend_days: 10
  week_start: sunday
allegro:
  client_id: "cid"
  client_secret: "secret"
  token_file: "/tmp/tokens.json"
smtp:
  host: "smtp.example.com"
  port: 587
  login: "bot"
  password: "pw"
  from: "reports@example.com"
report:
  recipient: "owner@example.com"
  format: markdown
store:
  db_path: "/tmp/orders.db"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Analytics.WindowDays != 14 {
		t.Errorf("expected WindowDays=14, got %d", cfg.Analytics.WindowDays)
	}
	if cfg.Analytics.TopN != 5 {
		t.Errorf("expected TopN=5, got %d", cfg.Analytics.TopN)
	}
	if cfg.Allegro.ClientID != "cid" {
		t.Errorf("expected ClientID=cid, got %s", cfg.Allegro.ClientID)
	}
	if cfg.SMTP.Host != "smtp.example.com" {
		t.Errorf("expected SMTP host=smtp.example.com, got %s", cfg.SMTP.Host)
	}
	if cfg.Report.Format != "markdown" {
		t.Errorf("expected format=markdown, got %s", cfg.Report.Format)
	}
	if cfg.Store.DbPath != "/tmp/orders.db" {
		t.Errorf("expected db_path=/tmp/orders.db, got %s", cfg.Store.DbPath)
	}

	analytics, err := cfg.Analytics.AnalyticsConfig()
	if err != nil {
		t.Fatalf("expected analytics config, got %v", err)
	}
	if analytics.WeekStart != time.Sunday {
		t.Errorf("expected WeekStart=Sunday, got %v", analytics.WeekStart)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `allegro:
  client_id: "cid"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Analytics.WindowDays != 7 {
		t.Errorf("expected default WindowDays=7, got %d", cfg.Analytics.WindowDays)
	}
	if cfg.Analytics.WeekStart != "monday" {
		t.Errorf("expected default week_start=monday, got %s", cfg.Analytics.WeekStart)
	}
	if cfg.Allegro.FetchLimit != 100 {
		t.Errorf("expected default fetch_limit=100, got %d", cfg.Allegro.FetchLimit)
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected default format=text, got %s", cfg.Report.Format)
	}
	if cfg.Store.DbPath != "sales-atlas.db" {
		t.Errorf("expected default db_path=sales-atlas.db, got %s", cfg.Store.DbPath)
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := writeConfig(t, "analytics: window_days: 7: bad")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownWeekStart_ReturnsError(t *testing.T) {
	path := writeConfig(t, `analytics:
  week_start: someday`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown week_start, got nil")
	}
}

func TestLoad_NonPositiveWindow_ReturnsError(t *testing.T) {
	path := writeConfig(t, `analytics:
  window_days: 0`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for zero window_days, got nil")
	}
}
