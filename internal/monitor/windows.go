package monitor

import "hwmon/internal/entities/hardware"

// cpuSensorWindows matches the CPU thermal zone labels exposed through WMI.
const cpuSensorWindows = "cpu"

type windowsBackend struct {
	gpuStatusReader
	probe systemProbe
	nvml  GpuProvider
}

func (b *windowsBackend) Name() string { return "windows" }

func (b *windowsBackend) readCPUParameters(prev *hardware.Parameters) hardware.Parameters {
	return readCPUParameters(b.probe, prev, cpuSensorWindows, "", "")
}

func (b *windowsBackend) readGPUParameters(prev []hardware.Parameters) []hardware.Parameters {
	return readGPUParameters(b.nvml, prev)
}

func (b *windowsBackend) logAllComponents() { logComponents(b.probe) }
