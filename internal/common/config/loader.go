// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied after unmarshalling. The Mongo and job-search
// settings mirror the historical deployment defaults.
const (
	defaultAppName        = "jobapp"
	defaultMongoURI       = "mongodb://localhost:27017/"
	defaultMongoDatabase  = "job_app"
	defaultMongoColl      = "applications"
	defaultSearchBaseURL  = "https://jobs-api.example.com"
	defaultSearchTimeout  = 10000 // milliseconds
	defaultConnectTimeout = 5000  // milliseconds
	defaultServerPort     = 8080
	defaultReadTimeout    = 10000 // milliseconds
	defaultWriteTimeout   = 10000 // milliseconds
	defaultFormStatus     = "applied"
	defaultAPIStatus      = "wishlist"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DATABASE_MONGO_URI
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, e.g. config.production.yaml
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.App.Environment = env
	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or the project root,
// so tests running from package directories pick it up too.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = defaultAppName
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Database.Mongo.URI == "" {
		cfg.Database.Mongo.URI = defaultMongoURI
	}
	if cfg.Database.Mongo.Database == "" {
		cfg.Database.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Database.Mongo.Collection == "" {
		cfg.Database.Mongo.Collection = defaultMongoColl
	}
	if cfg.Database.Mongo.ConnectTimeout == 0 {
		cfg.Database.Mongo.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.APIs.JobSearch.BaseURL == "" {
		cfg.APIs.JobSearch.BaseURL = defaultSearchBaseURL
	}
	if cfg.APIs.JobSearch.Timeout == 0 {
		cfg.APIs.JobSearch.Timeout = defaultSearchTimeout
	}
	if cfg.Applications.DefaultFormStatus == "" {
		cfg.Applications.DefaultFormStatus = defaultFormStatus
	}
	if cfg.Applications.DefaultAPIStatus == "" {
		cfg.Applications.DefaultAPIStatus = defaultAPIStatus
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// overrideFromEnv applies the historical flat environment variables, which
// predate the viper key layout and take precedence over it.
func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("MONGO_URI"); val != "" {
		cfg.Database.Mongo.URI = val
	}
	if val := os.Getenv("JOBAPP_DB_NAME"); val != "" {
		cfg.Database.Mongo.Database = val
	}
	if val := os.Getenv("JOBAPP_COLLECTION"); val != "" {
		cfg.Database.Mongo.Collection = val
	}
	if val := os.Getenv("JOB_SEARCH_BASE_URL"); val != "" {
		cfg.APIs.JobSearch.BaseURL = val
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if !strings.HasPrefix(cfg.Database.Mongo.URI, "mongodb://") &&
		!strings.HasPrefix(cfg.Database.Mongo.URI, "mongodb+srv://") {
		return fmt.Errorf("database.mongo.uri must be a mongodb:// or mongodb+srv:// URI")
	}
	if cfg.APIs.JobSearch.BaseURL == "" {
		return fmt.Errorf("apis.job_search.base_url is required")
	}
	return nil
}
