package monitor

import (
	"math"
	"os"
)

// GetEnv retrieves an environment variable with a "HWMON_" prefix, or falls
// back to the unprefixed key.
func GetEnv(key string) (value string, exists bool) {
	if value, exists = os.LookupEnv("HWMON_" + key); exists {
		return value, exists
	}
	return os.LookupEnv(key)
}

func twoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// foldMax returns the larger of the previous running max and the current
// temperature. NaN marks a poll where no sensor matched; it never wins over
// a real reading, so a later valid sample re-seeds the running max.
func foldMax(prev, current float64) float64 {
	switch {
	case math.IsNaN(current):
		return prev
	case math.IsNaN(prev):
		return current
	default:
		return math.Max(prev, current)
	}
}
