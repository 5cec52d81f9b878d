package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Parse(writeConfig(t, "telegram:\n  token: \"123:abc\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := cfg.Telegram.PollTimeout.Std(); got != 10*time.Second {
		t.Errorf("poll_timeout default = %v, want 10s", got)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level default = %q, want info", cfg.Logging.Level)
	}
	if cfg.Storage.Path != "./data/pera.db" {
		t.Errorf("storage.path default = %q", cfg.Storage.Path)
	}
	if cfg.Notifier.Workers != 2 || cfg.Notifier.QueueSize != 256 || cfg.Notifier.RatePerSec != 3 {
		t.Errorf("notifier defaults = %+v", cfg.Notifier)
	}
	if len(cfg.Planner.Vocabulary) != len(DefaultVocabulary) {
		t.Errorf("vocabulary default has %d entries, want %d", len(cfg.Planner.Vocabulary), len(DefaultVocabulary))
	}
	if cfg.Planner.FuzzyThreshold != 70 {
		t.Errorf("fuzzy_threshold default = %d, want 70", cfg.Planner.FuzzyThreshold)
	}
	if cfg.Briefing.Hour != 7 || cfg.Briefing.Minute != 0 {
		t.Errorf("briefing default = %02d:%02d, want 07:00", cfg.Briefing.Hour, cfg.Briefing.Minute)
	}
	if cfg.Health.Addr != ":8080" {
		t.Errorf("health.addr default = %q", cfg.Health.Addr)
	}
}

func TestParseFull(t *testing.T) {
	t.Parallel()
	cfg, err := Parse(writeConfig(t, `
telegram:
  token: "123:abc"
  admin_chat_id: 777
  poll_timeout: 30s
logging:
  level: debug
  console: true
scheduler:
  timezone: Europe/Istanbul
planner:
  vocabulary: ["toplantı", "spor"]
  fuzzy_threshold: 85
briefing:
  enabled: true
  hour: 6
  minute: 45
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Telegram.AdminChatID != 777 {
		t.Errorf("admin_chat_id = %d", cfg.Telegram.AdminChatID)
	}
	if got := cfg.Telegram.PollTimeout.Std(); got != 30*time.Second {
		t.Errorf("poll_timeout = %v", got)
	}
	if cfg.Planner.FuzzyThreshold != 85 || len(cfg.Planner.Vocabulary) != 2 {
		t.Errorf("planner = %+v", cfg.Planner)
	}
	if cfg.Location().String() != "Europe/Istanbul" {
		t.Errorf("Location = %v", cfg.Location())
	}
	if !cfg.Briefing.Enabled || cfg.Briefing.Hour != 6 || cfg.Briefing.Minute != 45 {
		t.Errorf("briefing = %+v", cfg.Briefing)
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing token", "logging:\n  level: info\n", "telegram.token"},
		{"unknown key", "telegram:\n  token: x\n  legacy_mode: true\n", "legacy_mode"},
		{"bad duration", "telegram:\n  token: x\n  poll_timeout: soon\n", "invalid duration"},
		{"bad timezone", "telegram:\n  token: x\nscheduler:\n  timezone: Mars/Olympus\n", "timezone"},
		{"threshold out of range", "telegram:\n  token: x\nplanner:\n  fuzzy_threshold: 150\n", "fuzzy_threshold"},
		{"briefing out of range", "telegram:\n  token: x\nbriefing:\n  hour: 25\n", "briefing"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Parse accepted %q", tt.body)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestManagerLoadAndGet(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "telegram:\n  token: \"123:abc\"\n")
	m := NewManager(path, logx.Nop())

	if m.Get() != nil {
		t.Fatal("Get before Load returned non-nil")
	}
	cfg, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Get() != cfg {
		t.Fatal("Get did not return the committed config")
	}
}

func TestManagerSubscribeUnsubscribe(t *testing.T) {
	t.Parallel()
	m := NewManager("unused.yaml", logx.Nop())
	ch := m.Subscribe(1)

	cfg := &Config{}
	m.publish(cfg)
	select {
	case got := <-ch:
		if got != cfg {
			t.Fatal("subscriber received wrong config")
		}
	default:
		t.Fatal("subscriber received nothing")
	}

	// A full buffer keeps only the latest update.
	first, second := &Config{}, &Config{}
	m.publish(first)
	m.publish(second)
	if got := <-ch; got != second {
		t.Fatal("stale config delivered after overflow")
	}

	m.Unsubscribe(ch)
	if _, open := <-ch; open {
		t.Fatal("channel still open after Unsubscribe")
	}
	m.publish(cfg) // must not panic with no subscribers
}
