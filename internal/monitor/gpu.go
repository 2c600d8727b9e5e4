package monitor

import (
	"log/slog"

	"hwmon/internal/entities/hardware"
)

// readGPUParameters queries each device index from the vendor provider and
// folds the running max temperature against the positionally-corresponding
// previous entry. A device whose query fails is logged and skipped, so the
// returned list may be shorter than the device count; a missing previous
// entry means the current temperature seeds the max.
func readGPUParameters(provider GpuProvider, prev []hardware.Parameters) []hardware.Parameters {
	devices := []hardware.Parameters{}
	if provider == nil {
		return devices
	}

	count, err := provider.DeviceCount()
	if err != nil {
		slog.Warn("Failed to get number of GPU devices", "err", err)
		return devices
	}

	for i := 0; i < count; i++ {
		telemetry, err := provider.DeviceTelemetry(i)
		if err != nil {
			slog.Warn("Failed to query GPU device", "index", i, "err", err)
			continue
		}

		maxTemp := telemetry.TemperatureCelsius
		if i < len(prev) {
			maxTemp = foldMax(prev[i].MaxTemperature, telemetry.TemperatureCelsius)
		}

		devices = append(devices, hardware.Parameters{
			Label:              telemetry.Name,
			UsagePercentage:    telemetry.UsagePercent,
			CurrentTemperature: telemetry.TemperatureCelsius,
			MaxTemperature:     maxTemp,
		})
	}
	return devices
}
