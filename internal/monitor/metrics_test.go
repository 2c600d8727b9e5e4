package monitor

import (
	"bytes"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
)

func TestEnableMetrics(t *testing.T) {
	provider := &fakeGpuProvider{
		devices: []GpuTelemetry{{Name: "RTX 4090", TemperatureCelsius: 61, UsagePercent: 97}},
	}
	m := newTestMonitor(&seqProbe{}, provider)
	m.Poll()

	set := metrics.NewSet()
	m.EnableMetrics(set)

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()

	assert.Contains(t, out, "hwmon_cpu_usage_percent 50")
	assert.Contains(t, out, "hwmon_cpu_temperature_celsius")
	assert.Contains(t, out, `hwmon_gpu_temperature_celsius{index="0"} 61`)
	assert.Contains(t, out, `hwmon_gpu_usage_percent{index="0"} 97`)
}

func TestEnableMetricsBeforeFirstPoll(t *testing.T) {
	m := newTestMonitor(&seqProbe{}, nil)

	set := metrics.NewSet()
	m.EnableMetrics(set)

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	// nil cpu reading reports zero instead of panicking
	assert.Contains(t, buf.String(), "hwmon_cpu_usage_percent 0")
}
