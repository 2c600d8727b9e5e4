package monitor

import (
	"fmt"
	"log/slog"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// GpuTelemetry is one device's live reading from the vendor library.
type GpuTelemetry struct {
	Name               string
	TemperatureCelsius float64
	UsagePercent       float64
}

// GpuProvider is the vendor GPU management facility. A nil provider means
// the vendor library was unavailable at startup and GPU telemetry degrades
// to an empty list.
type GpuProvider interface {
	DeviceCount() (int, error)
	DeviceTelemetry(index int) (GpuTelemetry, error)
}

type nvmlProvider struct{}

// newNvmlProvider initializes NVML once at backend construction. Failure is
// logged and degrades to no GPU telemetry rather than aborting; it is not
// retried.
func newNvmlProvider() GpuProvider {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		slog.Warn("Failed to initialize NVML", "err", nvml.ErrorString(ret))
		return nil
	}
	slog.Debug("NVML initialized")
	return nvmlProvider{}
}

func nvmlError(op string, ret nvml.Return) error {
	return fmt.Errorf("%s: %s", op, nvml.ErrorString(ret))
}

func (nvmlProvider) DeviceCount() (int, error) {
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0, nvmlError("device count", ret)
	}
	return count, nil
}

func (nvmlProvider) DeviceTelemetry(index int) (GpuTelemetry, error) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return GpuTelemetry{}, nvmlError("device handle", ret)
	}
	temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return GpuTelemetry{}, nvmlError("temperature", ret)
	}
	utilization, ret := device.GetUtilizationRates()
	if ret != nvml.SUCCESS {
		return GpuTelemetry{}, nvmlError("utilization", ret)
	}
	name, ret := device.GetName()
	if ret != nvml.SUCCESS {
		return GpuTelemetry{}, nvmlError("name", ret)
	}
	return GpuTelemetry{
		Name:               name,
		TemperatureCelsius: float64(temp),
		UsagePercent:       float64(utilization.Gpu),
	}, nil
}
