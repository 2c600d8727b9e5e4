package monitor

import "hwmon/internal/entities/hardware"

// AMD exposes the package temperature as k10temp Tctl; Intel as a coretemp
// "Package id N" sensor. AMD is tried first, Intel is the fallback.
const (
	cpuSensorLinuxAMD   = "k10temp"
	cpuSensorLinuxIntel = "package"
)

type linuxBackend struct {
	gpuStatusReader
	probe systemProbe
	nvml  GpuProvider
}

func (b *linuxBackend) Name() string { return "linux" }

func (b *linuxBackend) readCPUParameters(prev *hardware.Parameters) hardware.Parameters {
	return readCPUParameters(b.probe, prev, cpuSensorLinuxAMD, cpuSensorLinuxIntel, "")
}

func (b *linuxBackend) readGPUParameters(prev []hardware.Parameters) []hardware.Parameters {
	return readGPUParameters(b.nvml, prev)
}

func (b *linuxBackend) logAllComponents() { logComponents(b.probe) }
