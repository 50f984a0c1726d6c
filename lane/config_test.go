package lane

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfig applies cfg for the duration of the test.
func withConfig(t *testing.T, cfg Config) {
	t.Helper()
	prev := CurrentConfig()
	Configure(cfg)
	t.Cleanup(func() { Configure(prev) })
}

// unsetenv removes key until the test ends.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfig(t *testing.T) {
	unsetenv(t, "SCL_NO_SIMD")
	unsetenv(t, "SCL_ACCEL_MIN_LANES")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	t.Setenv("SCL_NO_SIMD", "true")
	t.Setenv("SCL_ACCEL_MIN_LANES", "64")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{NoSIMD: true, AccelMinLanes: 64}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad bool", "SCL_NO_SIMD", "maybe"},
		{"bad int", "SCL_ACCEL_MIN_LANES", "many"},
		{"zero lanes", "SCL_ACCEL_MIN_LANES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureScalar(t *testing.T) {
	withConfig(t, Config{NoSIMD: true, AccelMinLanes: 4})
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, 16, CurrentWidth())
	assert.Equal(t, 4, MaxLanes[float32]())
	assert.False(t, accelerated(1024))
	assert.False(t, Accel().Accelerated)

	// Results do not depend on the dispatch level.
	a := Iota[float32](32)
	assert.Equal(t, float32(31*32/2), ReduceSum(a))
	assert.Equal(t, float32(62), Add(a, a).Lane(31))
}

func TestConfigureFixesLaneThreshold(t *testing.T) {
	withConfig(t, Config{AccelMinLanes: -3})
	assert.Equal(t, DefaultConfig().AccelMinLanes, CurrentConfig().AccelMinLanes)
}
