// internal/workers/career/generate-recommendations/config.go
package generaterecommendations

import (
	"time"

	"career-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// IncludeCourseRoutes is the default when a job does not say.
	IncludeCourseRoutes bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

// ConfigFrom builds the worker config from the loaded application config.
func ConfigFrom(wcfg config.WorkerConfig, rec config.RecommendationsConfig) *Config {
	cfg := LoadConfig()
	if wcfg.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wcfg.Timeout)
	}
	cfg.IncludeCourseRoutes = rec.IncludeCourseRoutes
	return cfg
}
