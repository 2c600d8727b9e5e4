package monitor

import (
	"errors"
	"fmt"
	"log/slog"

	"hwmon/internal/entities/hardware"
)

var errUnsupportedOS = errors.New("unsupported operating system")

// backend is the platform-specific sampling implementation. The variant set
// is closed: windows, linux, darwin. One is selected at construction and
// never changes.
type backend interface {
	// Name identifies the active implementation.
	Name() string
	// readCPUParameters samples the CPU, folding the max temperature
	// against the previous reading when one exists.
	readCPUParameters(prev *hardware.Parameters) hardware.Parameters
	// readGPUParameters samples all GPU devices, folding max temperatures
	// positionally against the previous list.
	readGPUParameters(prev []hardware.Parameters) []hardware.Parameters
	// readGpuDevices parses the miner's GPU availability file beneath the
	// given configuration directory.
	readGpuDevices(configPath string) []hardware.GpuStatus
	// logAllComponents dumps every enumerated component at debug level.
	logAllComponents()
}

// newBackend resolves the backend for the given GOOS. There is no fallback
// implementation; an unsupported OS is an error the caller must treat as
// fatal.
func newBackend(goos string) (backend, error) {
	probe := newSysProbe()
	switch goos {
	case "windows":
		return &windowsBackend{probe: probe, nvml: newNvmlProvider()}, nil
	case "linux":
		return &linuxBackend{probe: probe, nvml: newNvmlProvider()}, nil
	case "darwin":
		return &darwinBackend{probe: probe}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedOS, goos)
	}
}

// logComponents is shared by all backends' logAllComponents.
func logComponents(probe systemProbe) {
	for _, component := range probe.temperatures() {
		slog.Debug("Component", "label", component.SensorKey, "temperature", component.Temperature)
	}
}
