package monitor

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// EnableMetrics registers gauges for the retained readings on the given
// set. Gauges read the last snapshot under the read lock, so scrapes never
// trigger sampling. GPU gauges are registered for the devices known at call
// time; call after the first poll so the device list is populated.
func (m *Monitor) EnableMetrics(s *metrics.Set) {
	s.NewGauge("hwmon_cpu_usage_percent", func() float64 {
		m.mu.RLock()
		defer m.mu.RUnlock()
		if m.cpu == nil {
			return 0
		}
		return m.cpu.UsagePercentage
	})
	s.NewGauge("hwmon_cpu_temperature_celsius", func() float64 {
		m.mu.RLock()
		defer m.mu.RUnlock()
		if m.cpu == nil || !m.cpu.SensorAvailable() {
			return 0
		}
		return m.cpu.CurrentTemperature
	})
	s.NewGauge("hwmon_cpu_max_temperature_celsius", func() float64 {
		m.mu.RLock()
		defer m.mu.RUnlock()
		if m.cpu == nil || !m.cpu.SensorAvailable() {
			return 0
		}
		return m.cpu.MaxTemperature
	})

	m.mu.RLock()
	gpuCount := len(m.gpu)
	m.mu.RUnlock()

	for i := 0; i < gpuCount; i++ {
		index := i
		s.NewGauge(fmt.Sprintf(`hwmon_gpu_usage_percent{index="%d"}`, index), func() float64 {
			m.mu.RLock()
			defer m.mu.RUnlock()
			if index >= len(m.gpu) {
				return 0
			}
			return m.gpu[index].UsagePercentage
		})
		s.NewGauge(fmt.Sprintf(`hwmon_gpu_temperature_celsius{index="%d"}`, index), func() float64 {
			m.mu.RLock()
			defer m.mu.RUnlock()
			if index >= len(m.gpu) {
				return 0
			}
			return m.gpu[index].CurrentTemperature
		})
		s.NewGauge(fmt.Sprintf(`hwmon_gpu_max_temperature_celsius{index="%d"}`, index), func() float64 {
			m.mu.RLock()
			defer m.mu.RUnlock()
			if index >= len(m.gpu) {
				return 0
			}
			return m.gpu[index].MaxTemperature
		})
	}
}
