package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Sink names accepted by the `sink` setting.
const (
	SinkDiskv  = "diskv"
	SinkRedis  = "redis"
	SinkMemory = "memory"
)

// Config is the resolved `.mood.yaml`.
type Config struct {
	Path      string `json:"path" yaml:"path"`
	Sink      string `json:"sink" yaml:"sink"`
	RedisURL  string `json:"redis_url" yaml:"redis_url"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
	// Chart colors; empty keeps the built-in palette.
	GraphPositive string `json:"graph_positive" yaml:"graph_positive"`
	GraphNegative string `json:"graph_negative" yaml:"graph_negative"`
}

// BasePath is Path with a leading ~ expanded.
func (c Config) BasePath() string {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// LoadConfig reads `.mood.yaml` from $MOOD_CONFIG_PATH or the working
// directory, with MOOD_* environment variables taking precedence.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.mood.db")
	v.SetDefault("sink", SinkDiskv)
	v.SetDefault("redis_url", DefaultRedisURL)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetConfigName(".mood") // .yaml is implicit
	v.SetEnvPrefix("MOOD")
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "MOOD_LOG_LEVEL")
	_ = v.BindEnv("log.format", "MOOD_LOG_FORMAT")
	_ = v.BindEnv("graph.positive", "MOOD_GRAPH_POSITIVE")
	_ = v.BindEnv("graph.negative", "MOOD_GRAPH_NEGATIVE")

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("store: read config: %w", err)
		}
	}

	return Config{
		Path:      v.GetString("path"),
		Sink:      v.GetString("sink"),
		RedisURL:  v.GetString("redis_url"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),

		GraphPositive: v.GetString("graph.positive"),
		GraphNegative: v.GetString("graph.negative"),
	}, nil
}

// Open builds the sink cfg names and wraps it in a Store. The store is not
// loaded yet.
func Open(cfg Config, log *zap.Logger) (*Store, error) {
	sink, err := OpenSink(cfg, log)
	if err != nil {
		return nil, err
	}
	return New(sink, log), nil
}

// OpenSink builds the sink cfg names.
func OpenSink(cfg Config, log *zap.Logger) (Sink, error) {
	switch cfg.Sink {
	case "", SinkDiskv:
		return NewDiskvSink(cfg.BasePath(), log)
	case SinkRedis:
		return NewRedisSink(cfg.RedisURL, log)
	case SinkMemory:
		return NewMemorySink(), nil
	default:
		return nil, fmt.Errorf("store: unknown sink %q (want %s, %s or %s)", cfg.Sink, SinkDiskv, SinkRedis, SinkMemory)
	}
}
