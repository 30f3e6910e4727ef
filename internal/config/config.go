package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jengwei/trip-report/internal/segment"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	APIKey    string

	MaxTimeGapSeconds int64
	MaxDistanceKm     float64
	Palette           []string
}

// fileConfig is the optional YAML overlay for tuning segmentation and
// presentation without touching the environment
type fileConfig struct {
	Segmentation struct {
		MaxTimeGapSeconds int64   `yaml:"max_time_gap_seconds"`
		MaxDistanceKm     float64 `yaml:"max_distance_km"`
	} `yaml:"segmentation"`
	Palette []string `yaml:"palette"`
}

// Load builds configuration from the environment (.env is honored when
// present) plus an optional YAML file named by CONFIG_FILE.
func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getenvDefault("PORT", ":8080"),
		DBPath:            getenvDefault("DB_PATH", "./data/datasets.db"),
		JWTSecret:         getenvDefault("JWT_SECRET", "change-me-in-production"),
		APIKey:            os.Getenv("API_KEY"),
		MaxTimeGapSeconds: segment.DefaultMaxTimeGapSeconds,
		MaxDistanceKm:     segment.DefaultMaxDistanceKm,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
		log.Printf("[Config] Applied overrides from %s", path)
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Segmentation.MaxTimeGapSeconds > 0 {
		c.MaxTimeGapSeconds = fc.Segmentation.MaxTimeGapSeconds
	}
	if fc.Segmentation.MaxDistanceKm > 0 {
		c.MaxDistanceKm = fc.Segmentation.MaxDistanceKm
	}
	if len(fc.Palette) > 0 {
		c.Palette = fc.Palette
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
