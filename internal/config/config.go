package config

import "time"

type Config struct {
	Archive      ArchiveConfig  `yaml:"archive"`
	Storage      StorageConfig  `yaml:"storage"`
	Incoming     IncomingConfig `yaml:"incoming"`
	Logging      LoggingConfig  `yaml:"logging"`
	Metrics      MetricsConfig  `yaml:"metrics"`
	ConfigReload ReloadConfig   `yaml:"configReload"`
}

// ArchiveConfig describes the remote archive's naming convention.
type ArchiveConfig struct {
	Host        string      `yaml:"host"`
	PathSegment string      `yaml:"pathSegment"`
	Eras        []EraConfig `yaml:"eras"`
	Missing     []string    `yaml:"missing"` // snapshots never published
}

type EraConfig struct {
	Start   string `yaml:"start"`
	Product string `yaml:"product"`
}

type StorageConfig struct {
	Root        string `yaml:"root" env:"QPE_ROOT"`
	DerivedRoot string `yaml:"derivedRoot" env:"QPE_DERIVED_ROOT"`
	BBox        string `yaml:"bbox" env:"QPE_BBOX"`
}

type IncomingConfig struct {
	Path      string      `yaml:"path" env:"QPE_INCOMING"`
	RejectDir string      `yaml:"rejectDir" env:"QPE_REJECT_DIR"`
	Watch     WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Mode            string        `yaml:"mode"`         // "auto", "poll", "fsnotify"
	PollInterval    time.Duration `yaml:"pollInterval"` // e.g. 30s
	PollSchedule    string        `yaml:"pollSchedule"` // cron spec, overrides pollInterval
	DebounceWindow  time.Duration `yaml:"debounceWindow"`
	StabilityWindow time.Duration `yaml:"stabilityWindow"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"QPE_LOG_LEVEL"`   // "info", "debug", etc.
	Format string `yaml:"format" env:"QPE_LOG_FORMAT"` // "json", "text"
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env:"QPE_METRICS_ADDR"` // empty disables the endpoint
}

type ReloadConfig struct {
	Enabled bool `yaml:"enabled"`
}
