package monitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldMax(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name     string
		prev     float64
		current  float64
		expected float64
	}{
		{"current higher", 45, 50, 50},
		{"previous higher", 50, 45, 50},
		{"equal", 45, 45, 45},
		{"current NaN keeps previous", 45, nan, 45},
		{"previous NaN reseeds from current", nan, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, foldMax(tt.prev, tt.current))
		})
	}
}

func TestFoldMaxBothNaN(t *testing.T) {
	assert.True(t, math.IsNaN(foldMax(math.NaN(), math.NaN())))
}

func TestGetEnvPrefix(t *testing.T) {
	t.Setenv("HWMON_TEST_KEY", "prefixed")
	t.Setenv("TEST_KEY", "bare")

	value, exists := GetEnv("TEST_KEY")
	assert.True(t, exists)
	assert.Equal(t, "prefixed", value)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("TEST_FALLBACK_KEY", "bare")

	value, exists := GetEnv("TEST_FALLBACK_KEY")
	assert.True(t, exists)
	assert.Equal(t, "bare", value)
}

func TestTwoDecimals(t *testing.T) {
	assert.Equal(t, 47.13, twoDecimals(47.1278))
	assert.Equal(t, 0.0, twoDecimals(0))
}
