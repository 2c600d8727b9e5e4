package monitor

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"hwmon/internal/entities/hardware"
)

// gpuStatusFileName is the fixed location of the miner's availability file
// relative to the configuration directory.
var gpuStatusFileName = filepath.Join("gpuminer", "gpu_status.json")

// gpuStatusReader parses the externally-produced GPU availability file.
// Embedded in every backend; the logic is identical on all platforms.
type gpuStatusReader struct{}

// readGpuDevices reads <configPath>/gpuminer/gpu_status.json. A missing or
// unparseable file is logged and yields an empty list, never an error. Note
// the caller's previously retained list is replaced either way.
func (gpuStatusReader) readGpuDevices(configPath string) []hardware.GpuStatus {
	file := filepath.Join(configPath, gpuStatusFileName)
	devices := []hardware.GpuStatus{}

	data, err := os.ReadFile(file)
	if err != nil {
		slog.Warn("Error while getting gpu status", "path", file, "err", err)
		return devices
	}
	if err := json.Unmarshal(data, &devices); err != nil {
		slog.Warn("Failed to parse gpu status", "path", file, "err", err)
		return []hardware.GpuStatus{}
	}
	return devices
}
