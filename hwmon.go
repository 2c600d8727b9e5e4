// Package hwmon provides the name and version of the hardware monitor.
package hwmon

const (
	AppName = "hwmon"
	Version = "0.1.0"
)
