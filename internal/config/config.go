// Package config reads service settings from the environment (optionally
// seeded from a .env file) and engine tuning from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"hindispell/pkg/options"
)

type Config struct {
	HTTPAddr  string
	AdminAddr string

	RedisAddr     string // empty disables persistent custom words
	RedisPassword string
	RedisDB       int

	DictionaryPath   string // word list text file; empty uses the embedded list
	BigramPath       string
	DictionarySQLite string // SQLite store, used when DictionaryPath is empty
	TuningFile       string

	LogFile   string
	LogLevel  string
	LogFormat string

	RateLimit      float64 // requests per second, 0 disables
	RateBurst      int
	MaxTextRunes   int
	MaxBatch       int
	RequestTimeout time.Duration
	CustomWordFreq int
}

// Load reads envFile when it exists, then the environment. Variables that are
// already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return &Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		AdminAddr:        getenv("ADMIN_ADDR", ":8081"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		DictionaryPath:   os.Getenv("DICTIONARY_PATH"),
		BigramPath:       os.Getenv("BIGRAM_PATH"),
		DictionarySQLite: os.Getenv("DICTIONARY_SQLITE"),
		TuningFile:       os.Getenv("TUNING_FILE"),
		LogFile:          os.Getenv("LOG_FILE"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFormat:        getenv("LOG_FORMAT", "text"),
		RateLimit:        getEnvFloat("RATE_LIMIT", 0),
		RateBurst:        getEnvInt("RATE_BURST", 20),
		MaxTextRunes:     getEnvInt("MAX_TEXT_RUNES", 5000),
		MaxBatch:         getEnvInt("MAX_BATCH", 100),
		RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		CustomWordFreq:   getEnvInt("CUSTOM_WORD_FREQ", 1_000_000_000),
	}, nil
}

// Tuning mirrors options.CorrectorOptions; unset keys keep the defaults.
type Tuning struct {
	MaxCandidates   *int     `yaml:"max_candidates"`
	BoundedDistance *int     `yaml:"bounded_distance"`
	FallbackFactor  *int     `yaml:"fallback_factor"`
	DistanceDecay   *float64 `yaml:"distance_decay"`
	ScoreScale      *float64 `yaml:"score_scale"`
	CacheSize       *int     `yaml:"cache_size"`
	PhoneticBonus   bool     `yaml:"phonetic_bonus"`
	ContextScoring  bool     `yaml:"context_scoring"`
	SkipNonWords    bool     `yaml:"skip_non_words"`
	Workers         *int     `yaml:"workers"`
}

// LoadTuning parses the YAML tuning file at path.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &t, nil
}

// Options converts the tuning into engine options.
func (t *Tuning) Options() []options.Options {
	if t == nil {
		return nil
	}
	var opts []options.Options
	if t.MaxCandidates != nil {
		opts = append(opts, options.WithMaxCandidates(*t.MaxCandidates))
	}
	if t.BoundedDistance != nil {
		opts = append(opts, options.WithBoundedDistance(*t.BoundedDistance))
	}
	if t.FallbackFactor != nil {
		opts = append(opts, options.WithFallbackFactor(*t.FallbackFactor))
	}
	if t.DistanceDecay != nil {
		opts = append(opts, options.WithDistanceDecay(*t.DistanceDecay))
	}
	if t.ScoreScale != nil {
		opts = append(opts, options.WithScoreScale(*t.ScoreScale))
	}
	if t.CacheSize != nil {
		opts = append(opts, options.WithCacheSize(*t.CacheSize))
	}
	if t.PhoneticBonus {
		opts = append(opts, options.WithPhoneticBonus())
	}
	if t.ContextScoring {
		opts = append(opts, options.WithContextScoring())
	}
	if t.SkipNonWords {
		opts = append(opts, options.WithSkipNonWords())
	}
	if t.Workers != nil {
		opts = append(opts, options.WithWorkers(*t.Workers))
	}
	return opts
}

// EngineOptions loads TuningFile when set.
func (c *Config) EngineOptions() ([]options.Options, error) {
	if c.TuningFile == "" {
		return nil, nil
	}
	t, err := LoadTuning(c.TuningFile)
	if err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	return t.Options(), nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
