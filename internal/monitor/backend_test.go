package monitor

import (
	"testing"

	"github.com/shirou/gopsutil/v4/sensors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendSupportedOS(t *testing.T) {
	for _, goos := range []string{"windows", "linux", "darwin"} {
		t.Run(goos, func(t *testing.T) {
			b, err := newBackend(goos)
			require.NoError(t, err)
			assert.Equal(t, goos, b.Name())
		})
	}
}

func TestNewBackendUnsupportedOS(t *testing.T) {
	for _, goos := range []string{"plan9", "freebsd", ""} {
		b, err := newBackend(goos)
		assert.Nil(t, b)
		require.Error(t, err)
		assert.ErrorIs(t, err, errUnsupportedOS)
	}
}

func TestWindowsBackendCPUHeuristic(t *testing.T) {
	probe := &fakeProbe{
		temps: []sensors.TemperatureStat{
			sensor("cpu_thermal_zone", 47),
			sensor("gpu_thermal_zone", 80),
		},
		brand: "Intel Core i9",
	}
	b := &windowsBackend{probe: probe}

	params := b.readCPUParameters(nil)
	assert.Equal(t, 47.0, params.CurrentTemperature)
	assert.Equal(t, "Intel Core i9", params.Label)
}

func TestLinuxBackendCPUHeuristic(t *testing.T) {
	probe := &fakeProbe{
		temps: []sensors.TemperatureStat{
			sensor("k10temp_tctl", 65),
			sensor("coretemp_package_id_0", 48),
		},
		brand: "AMD Ryzen 7",
	}
	b := &linuxBackend{probe: probe}

	params := b.readCPUParameters(nil)
	// AMD sensor wins when present
	assert.Equal(t, 65.0, params.CurrentTemperature)
}

func TestDarwinBackendCPUHeuristic(t *testing.T) {
	probe := &fakeProbe{
		temps: []sensors.TemperatureStat{sensor("cpu_proximity", 51)},
		brand: "Intel Core i5",
	}
	b := &darwinBackend{probe: probe}

	params := b.readCPUParameters(nil)
	// no Apple silicon sensors, the Intel fallback applies
	assert.Equal(t, 51.0, params.CurrentTemperature)
	assert.Equal(t, "Intel Core i5 CPU", params.Label)
}
