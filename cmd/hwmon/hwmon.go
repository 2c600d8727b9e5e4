package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"hwmon"
	"hwmon/internal/entities/hardware"
	"hwmon/internal/monitor"

	"github.com/VictoriaMetrics/metrics"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v":
			fmt.Println(hwmon.AppName, hwmon.Version)
		}
		os.Exit(0)
	}

	interval := 10 * time.Second
	if intervalEnvVar, exists := monitor.GetEnv("INTERVAL"); exists {
		parsed, err := time.ParseDuration(intervalEnvVar)
		if err != nil {
			log.Fatal("Invalid INTERVAL: ", err)
		}
		interval = parsed
	}

	m := monitor.Default()

	// read the miner's availability file once at startup if configured
	if configPath, exists := monitor.GetEnv("CONFIG_PATH"); exists {
		devices := m.ReadGpuDevices(configPath)
		for _, device := range devices {
			slog.Info("GPU device", "name", device.DeviceName, "available", device.IsAvailable)
		}
	}

	// first poll seeds the retained readings and the metrics device list
	logStatus(m.Poll())

	if addr, exists := monitor.GetEnv("METRICS_ADDR"); exists {
		set := metrics.NewSet()
		m.EnableMetrics(set)
		http.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			set.WritePrometheus(w)
		})
		go func() {
			log.Fatal(http.ListenAndServe(addr, nil))
		}()
		slog.Info("Serving metrics", "addr", addr)
	}

	for range time.Tick(interval) {
		logStatus(m.Poll())
	}
}

func logStatus(status hardware.Status) {
	if status.Cpu != nil {
		slog.Info("CPU",
			"label", status.Cpu.Label,
			"usage", status.Cpu.UsagePercentage,
			"temp", status.Cpu.CurrentTemperature,
			"max", status.Cpu.MaxTemperature,
		)
	}
	for i, gpu := range status.Gpu {
		slog.Info("GPU",
			"index", i,
			"label", gpu.Label,
			"usage", gpu.UsagePercentage,
			"temp", gpu.CurrentTemperature,
			"max", gpu.MaxTemperature,
		)
	}
}
