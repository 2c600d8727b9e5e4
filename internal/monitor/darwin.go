package monitor

import (
	"log/slog"

	"hwmon/internal/entities/hardware"
)

// Apple silicon reports thermal sensors under MTR keys; Intel Macs use CPU
// labeled SMC sensors. Silicon is tried first, Intel is the fallback. GPU
// components carry a GPU label on both.
const (
	cpuSensorDarwinSilicon = "mtr"
	cpuSensorDarwinIntel   = "cpu"
	gpuSensorDarwin        = "gpu"
)

// darwinBackend has no vendor GPU library. GPU entries are best-effort:
// temperature comes from GPU-labeled components, usage is a placeholder
// equal to overall CPU usage, and the label derives from the CPU brand.
type darwinBackend struct {
	gpuStatusReader
	probe systemProbe
}

func (b *darwinBackend) Name() string { return "darwin" }

func (b *darwinBackend) readCPUParameters(prev *hardware.Parameters) hardware.Parameters {
	return readCPUParameters(b.probe, prev, cpuSensorDarwinSilicon, cpuSensorDarwinIntel, " CPU")
}

func (b *darwinBackend) readGPUParameters(prev []hardware.Parameters) []hardware.Parameters {
	devices := []hardware.Parameters{}

	comps := filterComponents(b.probe.temperatures(), gpuSensorDarwin)
	if len(comps) == 0 {
		return devices
	}
	current := twoDecimals(averageTemperature(comps))

	usage, err := b.probe.cpuPercent()
	if err != nil {
		slog.Warn("Failed to read CPU utilization for GPU placeholder", "err", err)
	}
	brand, err := b.probe.cpuBrand()
	if err != nil {
		slog.Warn("Failed to read CPU model for GPU label", "err", err)
	}

	for i := range comps {
		maxTemp := current
		if i < len(prev) {
			maxTemp = foldMax(prev[i].MaxTemperature, current)
		}
		devices = append(devices, hardware.Parameters{
			Label:              brand + " GPU",
			UsagePercentage:    twoDecimals(usage),
			CurrentTemperature: current,
			MaxTemperature:     maxTemp,
		})
	}
	return devices
}

func (b *darwinBackend) logAllComponents() { logComponents(b.probe) }
