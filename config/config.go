package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Postgres  PostgresConfig
	S3        S3Config
	Scheduler SchedulerConfig
	Cleanser  CleanserConfig
	DBPath    string
	LogLevel  string
	Sources   map[string]*SourceConfig
}

type PostgresConfig struct {
	DSN string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type SchedulerConfig struct {
	Interval time.Duration
	Cron     string
}

type CleanserConfig struct {
	BatchSize     int
	RecleanseHour int
}

// SourceConfig describes one listing portal: where its detail-page outline
// tables sit in the DOM and how fast to drain its snapshot queue.
type SourceConfig struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	BatchSize int               `yaml:"batch_size"`
	Selectors SelectorConfig    `yaml:"selectors"`
	Endpoints map[string]string `yaml:"endpoints"`
}

type SelectorConfig struct {
	Table string `yaml:"table"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "auto"),
			Bucket:    getEnv("S3_BUCKET", "estate-cleansed"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
		Scheduler: SchedulerConfig{
			Cron: os.Getenv("CLEANSE_CRON"),
		},
		Cleanser: CleanserConfig{
			BatchSize:     getEnvInt("CLEANSE_BATCH_SIZE", 200),
			RecleanseHour: getEnvInt("RECLEANSE_HOUR", 4),
		},
		DBPath:   getEnv("DB_PATH", "cleanser.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Sources:  make(map[string]*SourceConfig),
	}

	if interval := os.Getenv("CLEANSE_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err == nil {
			cfg.Scheduler.Interval = d
		}
	}

	if err := cfg.loadSourceConfigs(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadSourceConfigs() error {
	configDir := "config/sources"
	entries, err := os.ReadDir(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		path := filepath.Join(configDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var source SourceConfig
		if err := yaml.Unmarshal(data, &source); err != nil {
			return err
		}

		c.Sources[source.ID] = &source
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
