package monitor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/sensors"
)

// minCPUSampleInterval is the window cpu.Percent blocks for to compute the
// utilization delta. Instantaneous utilization needs a time delta, so every
// CPU read stalls the caller for at least this long.
const minCPUSampleInterval = 200 * time.Millisecond

var errNoLogicalCores = errors.New("no logical cores enumerated")

// systemProbe abstracts the OS sensor and CPU facilities so backends can be
// exercised in tests without real hardware.
type systemProbe interface {
	temperatures() []sensors.TemperatureStat
	cpuPercent() (float64, error)
	cpuBrand() (string, error)
}

// sysProbe reads live data through gopsutil. The context carries the
// SYS_SENSORS override so the sensors sys location can be remapped.
type sysProbe struct {
	ctx context.Context
}

func newSysProbe() *sysProbe {
	ctx := context.Background()
	if sysSensors, _ := GetEnv("SYS_SENSORS"); sysSensors != "" {
		slog.Info("SYS_SENSORS", "path", sysSensors)
		ctx = context.WithValue(ctx,
			common.EnvKey, common.EnvMap{common.HostSysEnvKey: sysSensors},
		)
	}
	return &sysProbe{ctx: ctx}
}

func (p *sysProbe) temperatures() []sensors.TemperatureStat {
	temps, err := sensors.TemperaturesWithContext(p.ctx)
	if err != nil {
		// gopsutil returns partial results alongside a warning error
		slog.Debug("Sensors", "err", err)
	}
	return temps
}

func (p *sysProbe) cpuPercent() (float64, error) {
	percents, err := cpu.PercentWithContext(p.ctx, minCPUSampleInterval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("no cpu utilization data")
	}
	return percents[0], nil
}

func (p *sysProbe) cpuBrand() (string, error) {
	infos, err := cpu.InfoWithContext(p.ctx)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", errNoLogicalCores
	}
	return infos[0].ModelName, nil
}
