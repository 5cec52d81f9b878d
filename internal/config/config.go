package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

// DefaultVocabulary is the known-activity list the fuzzy normalizer matches
// against when the config does not provide one.
var DefaultVocabulary = []string{
	"günaydın", "kalkış", "kahvaltı", "öğle yemeği", "akşam yemeği",
	"toplantı", "spor", "uyku", "hatırlatma", "su iç", "ilaç", "mesai bitiş",
}

// Parse reads and strictly decodes the YAML config at path. Unknown keys are
// rejected so removed legacy keys are caught early during reload.
func Parse(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Telegram.PollTimeout <= 0 {
		c.Telegram.PollTimeout = Duration(10 * time.Second)
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = "info"
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		c.Storage.Path = "./data/pera.db"
	}
	if c.Storage.BusyTimeout <= 0 {
		c.Storage.BusyTimeout = Duration(5 * time.Second)
	}
	if c.Notifier.Workers <= 0 {
		c.Notifier.Workers = 2
	}
	if c.Notifier.QueueSize <= 0 {
		c.Notifier.QueueSize = 256
	}
	if c.Notifier.RatePerSec <= 0 {
		c.Notifier.RatePerSec = 3
	}
	if len(c.Planner.Vocabulary) == 0 {
		c.Planner.Vocabulary = append([]string(nil), DefaultVocabulary...)
	}
	if c.Planner.FuzzyThreshold <= 0 {
		c.Planner.FuzzyThreshold = 70
	}
	if c.Briefing.Hour == 0 && c.Briefing.Minute == 0 {
		c.Briefing.Hour = 7
	}
	if strings.TrimSpace(c.Health.Addr) == "" {
		c.Health.Addr = ":8080"
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if tz := strings.TrimSpace(c.Scheduler.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("scheduler.timezone: invalid %q: %w", tz, err)
		}
	}
	if c.Planner.FuzzyThreshold < 0 || c.Planner.FuzzyThreshold > 100 {
		return fmt.Errorf("planner.fuzzy_threshold must be in [0,100]")
	}
	if c.Briefing.Hour < 0 || c.Briefing.Hour > 23 || c.Briefing.Minute < 0 || c.Briefing.Minute > 59 {
		return fmt.Errorf("briefing: hour/minute out of range")
	}
	return nil
}

// Location resolves the configured scheduler timezone.
// Validate() has already checked it; fall back to local on surprise.
func (c *Config) Location() *time.Location {
	tz := strings.TrimSpace(c.Scheduler.Timezone)
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
