package config

type Config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logging   LoggingConfig   `yaml:"logging"`
	Storage   StorageConfig   `yaml:"storage"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Notifier  NotifierConfig  `yaml:"notifier"`
	Planner   PlannerConfig   `yaml:"planner"`
	Briefing  BriefingConfig  `yaml:"briefing"`
	Health    HealthConfig    `yaml:"health"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
	// AdminChatID receives the scheduled morning briefing.
	AdminChatID int64    `yaml:"admin_chat_id"`
	PollTimeout Duration `yaml:"poll_timeout"`
}

type LoggingConfig struct {
	Level   string      `yaml:"level"`
	Console bool        `yaml:"console"`
	File    LoggingFile `yaml:"file"`
}

type LoggingFile struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type StorageConfig struct {
	Path        string   `yaml:"path"`
	BusyTimeout Duration `yaml:"busy_timeout"`
}

type SchedulerConfig struct {
	// Timezone is an IANA TZ name, e.g. "Europe/Istanbul". Empty means local.
	Timezone string `yaml:"timezone"`
}

type NotifierConfig struct {
	Workers    int `yaml:"workers"`
	QueueSize  int `yaml:"queue_size"`
	RatePerSec int `yaml:"rate_per_sec"`
}

type PlannerConfig struct {
	// Vocabulary is the known-activity list used by the fuzzy normalizer.
	Vocabulary []string `yaml:"vocabulary"`
	// FuzzyThreshold is the 0-100 similarity score above which a description
	// is replaced by the canonical vocabulary phrase.
	FuzzyThreshold int `yaml:"fuzzy_threshold"`
}

type BriefingConfig struct {
	Enabled bool `yaml:"enabled"`
	Hour    int  `yaml:"hour"`
	Minute  int  `yaml:"minute"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}
