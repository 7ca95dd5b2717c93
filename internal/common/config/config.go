// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	APIs         APIsConfig         `mapstructure:"apis"`
	Applications ApplicationsConfig `mapstructure:"applications"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int `mapstructure:"write_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Mongo MongoConfig `mapstructure:"mongo"`
}

type MongoConfig struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	Collection     string `mapstructure:"collection"`
	ConnectTimeout int    `mapstructure:"connect_timeout"` // milliseconds
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	JobSearch JobSearchConfig `mapstructure:"job_search"`
}

type JobSearchConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// TimeoutDuration returns the outbound request timeout as a duration.
func (j JobSearchConfig) TimeoutDuration() time.Duration {
	return time.Duration(j.Timeout) * time.Millisecond
}

// ApplicationsConfig holds defaults applied when a submission carries no status.
// The form flow and the JSON API historically used different defaults, so
// both are explicit knobs.
type ApplicationsConfig struct {
	DefaultFormStatus string `mapstructure:"default_form_status"`
	DefaultAPIStatus  string `mapstructure:"default_api_status"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
