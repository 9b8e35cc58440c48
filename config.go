package rx

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/golobby/cast"
)

// Config holds the runtime defaults a host application wires into Run
// options rather than passing at every call site: default Buffer capacity,
// default BackpressureBuffer strategy, minimum scheduler delay, and the
// default Cache TTL.
type Config struct {
	BufferCapacity           int                  `toml:"buffer_capacity"`
	BackpressureStrategyName string               `toml:"backpressure_strategy"`
	MinSchedulerDelay        time.Duration        `toml:"-"`
	MinSchedulerDelayMillis  int64                `toml:"min_scheduler_delay_ms"`
	CacheTTL                 time.Duration        `toml:"-"`
	CacheTTLMillis           int64                `toml:"cache_ttl_ms"`
	BackpressureStrategy     BackpressureStrategy `toml:"-"`
}

// DefaultConfig returns the built-in defaults, used when no file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		BufferCapacity:           256,
		BackpressureStrategyName: "drop_oldest",
		MinSchedulerDelayMillis:  1,
		CacheTTLMillis:           0,
	}
}

// LoadConfig reads defaults from DefaultConfig, overlays a TOML file at
// path (if non-empty and present), then overlays environment variables
// (RX_BUFFER_CAPACITY, RX_BACKPRESSURE_STRATEGY, RX_MIN_SCHEDULER_DELAY_MS,
// RX_CACHE_TTL_MS), coercing their string values with golobby/cast. This
// mirrors the teacher's file-then-env feeder priority without reproducing
// its reflection-based struct-tag feeder framework.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("rx: decode config %s: %w", path, err)
			}
		}
	}

	if v, ok := os.LookupEnv("RX_BUFFER_CAPACITY"); ok {
		n, err := cast.FromType(v).Int()
		if err != nil {
			return Config{}, fmt.Errorf("rx: RX_BUFFER_CAPACITY: %w", err)
		}
		cfg.BufferCapacity = n
	}
	if v, ok := os.LookupEnv("RX_BACKPRESSURE_STRATEGY"); ok {
		cfg.BackpressureStrategyName = v
	}
	if v, ok := os.LookupEnv("RX_MIN_SCHEDULER_DELAY_MS"); ok {
		n, err := cast.FromType(v).Int64()
		if err != nil {
			return Config{}, fmt.Errorf("rx: RX_MIN_SCHEDULER_DELAY_MS: %w", err)
		}
		cfg.MinSchedulerDelayMillis = n
	}
	if v, ok := os.LookupEnv("RX_CACHE_TTL_MS"); ok {
		n, err := cast.FromType(v).Int64()
		if err != nil {
			return Config{}, fmt.Errorf("rx: RX_CACHE_TTL_MS: %w", err)
		}
		cfg.CacheTTLMillis = n
	}

	cfg.MinSchedulerDelay = clampDelay(time.Duration(cfg.MinSchedulerDelayMillis) * time.Millisecond)
	cfg.CacheTTL = time.Duration(cfg.CacheTTLMillis) * time.Millisecond
	strategy, err := parseBackpressureStrategy(cfg.BackpressureStrategyName)
	if err != nil {
		return Config{}, err
	}
	cfg.BackpressureStrategy = strategy

	return cfg, nil
}

func parseBackpressureStrategy(name string) (BackpressureStrategy, error) {
	switch name {
	case "drop_oldest", "":
		return DropOldest, nil
	case "drop_newest":
		return DropNewest, nil
	case "error":
		return ErrorOnOverflow, nil
	default:
		return 0, fmt.Errorf("rx: unknown backpressure strategy %q", name)
	}
}
