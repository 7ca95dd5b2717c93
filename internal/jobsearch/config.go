// internal/jobsearch/config.go
package jobsearch

import (
	"time"

	"github.com/agarwalaashrut/JobAppREST/internal/common/config"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func LoadConfig(cfg config.JobSearchConfig) *Config {
	return &Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.TimeoutDuration(),
	}
}
