// Package hardware holds the data model shared between the monitor and its
// consumers: per-unit telemetry parameters, the per-poll snapshot, and the
// GPU availability records sourced from the miner's status file.
package hardware

import "math"

// Parameters describes one compute unit (a CPU package or a GPU device) at a
// point in time. MaxTemperature is the running peak observed since the
// monitor was created and never decreases across polls for the same unit.
type Parameters struct {
	Label              string  `json:"label"`
	UsagePercentage    float64 `json:"usage_percentage"`
	CurrentTemperature float64 `json:"current_temperature"`
	MaxTemperature     float64 `json:"max_temperature"`
}

// DefaultParameters returns the placeholder value used when no reading
// exists yet.
func DefaultParameters() Parameters {
	return Parameters{Label: "N/A"}
}

// SensorAvailable reports whether the current temperature came from a real
// sensor. An empty matched sensor set averages to NaN, which callers must
// treat as "sensor unavailable" rather than a reading of zero.
func (p Parameters) SensorAvailable() bool {
	return !math.IsNaN(p.CurrentTemperature) && !math.IsInf(p.CurrentTemperature, 0)
}

// Status is the snapshot returned by each poll. Cpu is nil until the first
// poll completes. Gpu holds zero or more entries in device enumeration
// order; failed device queries are skipped, not padded.
type Status struct {
	Cpu *Parameters  `json:"cpu"`
	Gpu []Parameters `json:"gpu"`
}

// GpuStatus describes one GPU's eligibility for mining work. It is sourced
// from an external file and is independent of temperature sampling.
type GpuStatus struct {
	DeviceName  string `json:"device_name"`
	IsAvailable bool   `json:"is_available"`
}

// GpuStatusFile is the on-disk shape of the miner's status file.
type GpuStatusFile struct {
	GpuDevices []GpuStatus `json:"gpu_devices"`
}
