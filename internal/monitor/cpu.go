package monitor

import (
	"log/slog"
	"math"
	"strings"

	"hwmon/internal/entities/hardware"

	"github.com/shirou/gopsutil/v4/sensors"
)

// filterComponents returns the temperature components whose sensor key
// contains substr, matched case-insensitively. Sensor keys are brittle,
// driver-assigned labels, so substring matching is the best we get.
func filterComponents(temps []sensors.TemperatureStat, substr string) []sensors.TemperatureStat {
	substr = strings.ToLower(substr)
	var matched []sensors.TemperatureStat
	for _, t := range temps {
		if strings.Contains(strings.ToLower(t.SensorKey), substr) {
			matched = append(matched, t)
		}
	}
	return matched
}

// averageTemperature averages the matched components. An empty set divides
// zero by zero and yields NaN, the sensor-unavailable sentinel.
func averageTemperature(comps []sensors.TemperatureStat) float64 {
	var sum float64
	for _, c := range comps {
		sum += c.Temperature
	}
	return sum / float64(len(comps))
}

// readCPUParameters samples the CPU using the platform's label heuristics.
// Components matching primary are preferred; if none match and fallback is
// non-empty, fallback is tried (AMD vs Intel, Apple silicon vs Intel).
// Blocks for minCPUSampleInterval while the utilization delta is measured.
func readCPUParameters(probe systemProbe, prev *hardware.Parameters, primary, fallback, labelSuffix string) hardware.Parameters {
	temps := probe.temperatures()

	comps := filterComponents(temps, primary)
	if len(comps) == 0 && fallback != "" {
		comps = filterComponents(temps, fallback)
	}
	current := averageTemperature(comps)
	if math.IsNaN(current) {
		slog.Warn("No CPU temperature components matched", "primary", primary, "fallback", fallback)
	} else {
		current = twoDecimals(current)
	}

	usage, err := probe.cpuPercent()
	if err != nil {
		slog.Warn("Failed to read CPU utilization", "err", err)
	}

	label, err := probe.cpuBrand()
	if err != nil {
		// zero logical cores means the enumeration facility is broken;
		// surface it loudly instead of faking a model name
		slog.Error("Failed to read CPU model", "err", err)
	} else {
		label += labelSuffix
	}

	maxTemp := current
	if prev != nil {
		maxTemp = foldMax(prev.MaxTemperature, current)
	}

	return hardware.Parameters{
		Label:              label,
		UsagePercentage:    twoDecimals(usage),
		CurrentTemperature: current,
		MaxTemperature:     maxTemp,
	}
}
