// Package monitor samples CPU and GPU telemetry through a platform-specific
// backend and exposes a normalized snapshot plus the miner's GPU
// availability list. One Monitor is meant to live for the whole process.
package monitor

import (
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"hwmon/internal/entities/hardware"
)

// Monitor owns the platform backend and the readings retained between
// polls for running-max temperature tracking. All access is serialized
// through a read/write lock: Poll and ReadGpuDevices are writers, the
// snapshot accessors are readers.
type Monitor struct {
	mu         sync.RWMutex
	backend    backend
	cpu        *hardware.Parameters
	gpu        []hardware.Parameters
	gpuDevices []hardware.GpuStatus
}

var defaultMonitor = sync.OnceValue(func() *Monitor {
	m, err := New()
	if err != nil {
		slog.Error("Failed to create hardware monitor", "err", err)
		os.Exit(1)
	}
	return m
})

// Default returns the process-wide monitor, constructing it on first
// access. The instance lives for the process lifetime; there is no
// teardown. An unsupported host OS is fatal since no backend exists.
func Default() *Monitor {
	return defaultMonitor()
}

// New creates a monitor for the current host OS. Backend selection happens
// exactly once here. The LOG_LEVEL env var adjusts the default slog level.
func New() (*Monitor, error) {
	if logLevelStr, exists := GetEnv("LOG_LEVEL"); exists {
		switch strings.ToLower(logLevelStr) {
		case "debug":
			slog.SetLogLoggerLevel(slog.LevelDebug)
		case "warn":
			slog.SetLogLoggerLevel(slog.LevelWarn)
		case "error":
			slog.SetLogLoggerLevel(slog.LevelError)
		}
	}

	b, err := newBackend(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	slog.Debug("Hardware monitor backend", "name", b.Name())
	return &Monitor{backend: b}, nil
}

// Poll runs one sampling cycle and returns the fresh snapshot, replacing
// the retained readings. It never fails outright; absent sensors degrade to
// NaN or empty values. Poll blocks for at least minCPUSampleInterval while
// holding the write lock, so concurrent readers stall for that bounded
// duration.
func (m *Monitor) Poll() hardware.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	cpu := m.backend.readCPUParameters(m.cpu)
	gpu := m.backend.readGPUParameters(m.gpu)

	m.cpu = &cpu
	m.gpu = gpu

	return hardware.Status{Cpu: &cpu, Gpu: slices.Clone(gpu)}
}

// ReadGpuDevices reads the miner's GPU availability file beneath configPath
// and replaces the retained device list with the result, even when the file
// is missing or unparseable (the previous list is discarded).
func (m *Monitor) ReadGpuDevices(configPath string) []hardware.GpuStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	devices := m.backend.readGpuDevices(configPath)
	m.gpuDevices = devices
	return slices.Clone(devices)
}

// LastStatus returns the snapshot from the most recent poll without
// sampling. Cpu is nil before the first poll.
func (m *Monitor) LastStatus() hardware.Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var cpu *hardware.Parameters
	if m.cpu != nil {
		c := *m.cpu
		cpu = &c
	}
	return hardware.Status{Cpu: cpu, Gpu: slices.Clone(m.gpu)}
}

// GpuDevices returns the device list from the most recent ReadGpuDevices.
func (m *Monitor) GpuDevices() []hardware.GpuStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.gpuDevices)
}

// BackendName identifies the active platform implementation.
func (m *Monitor) BackendName() string {
	return m.backend.Name()
}

// LogAllComponents dumps every enumerated hardware component and its
// temperature at debug level. Diagnostic aid for tuning sensor heuristics.
func (m *Monitor) LogAllComponents() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.backend.logAllComponents()
}
