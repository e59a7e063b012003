package config

import (
	"time"

	"github.com/jdossgollin/climate-data/internal/naming"
)

const eraLayout = "2006-01-02T15:04:05"

// Default returns the built-in configuration for the public archive mirror.
func Default() *Config {
	eras := make([]EraConfig, 0, len(naming.DefaultEras))
	for _, e := range naming.DefaultEras {
		eras = append(eras, EraConfig{Start: e.Start.Format(eraLayout), Product: e.Product})
	}

	return &Config{
		Archive: ArchiveConfig{
			Host:        naming.Default.Host,
			PathSegment: naming.Default.PathSegment,
			Eras:        eras,
		},
		Storage: StorageConfig{
			Root: ".",
		},
		Incoming: IncomingConfig{
			Watch: WatchConfig{
				Mode:            "auto",
				PollInterval:    30 * time.Second,
				DebounceWindow:  2 * time.Second,
				StabilityWindow: time.Second,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		ConfigReload: ReloadConfig{
			Enabled: true,
		},
	}
}
