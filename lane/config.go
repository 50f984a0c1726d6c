package lane

import (
	"fmt"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
)

// Config controls how vector operations are executed.
// It is read from the environment at program start and may be replaced
// with Configure.
type Config struct {
	// NoSIMD forces the scalar fallback regardless of CPU capabilities.
	// Useful for testing and debugging.
	NoSIMD bool `env:"SCL_NO_SIMD"`

	// AccelMinLanes is the smallest lane count for which float operations
	// are handed to the vectorized kernels. Narrower vectors stay on the
	// scalar loop, which is faster for them.
	AccelMinLanes int `env:"SCL_ACCEL_MIN_LANES" envDefault:"16"`
}

// DefaultConfig returns the configuration used when the environment sets
// nothing.
func DefaultConfig() Config {
	return Config{AccelMinLanes: 16}
}

// LoadConfig reads Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AccelMinLanes < 1 {
		return Config{}, fmt.Errorf("SCL_ACCEL_MIN_LANES must be positive, got %d", cfg.AccelMinLanes)
	}
	return cfg, nil
}

var configPtr atomic.Pointer[Config]

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	if c := configPtr.Load(); c != nil {
		return *c
	}
	return DefaultConfig()
}

// Configure replaces the active configuration and re-runs CPU dispatch.
// It is safe to call concurrently with vector operations; operations that
// are already running finish with the previous settings.
func Configure(cfg Config) {
	if cfg.AccelMinLanes < 1 {
		cfg.AccelMinLanes = DefaultConfig().AccelMinLanes
	}
	configPtr.Store(&cfg)
	dispatch(cfg)
}
