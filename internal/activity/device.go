package activity

import (
	"os"
	"runtime"
)

// DeviceInfo is the coarse environment classification stamped onto every
// activity entry.
type DeviceInfo struct {
	Browser string
	OS      string
	Device  string
}

// DetectDevice classifies the current environment. The classification is
// deliberately coarse; it exists so log entries can say roughly where an
// action came from, nothing more.
func DetectDevice() DeviceInfo {
	var osName string
	switch runtime.GOOS {
	case "windows":
		osName = "Windows"
	case "darwin":
		osName = "MacOS"
	case "linux":
		osName = "Linux"
	case "android":
		osName = "Android"
	case "ios":
		osName = "iOS"
	default:
		osName = "Unknown OS"
	}

	client := os.Getenv("TERM_PROGRAM")
	if client == "" {
		client = os.Getenv("TERM")
	}
	if client == "" {
		client = "Unknown Client"
	}

	device, err := os.Hostname()
	if err != nil || device == "" {
		device = runtime.GOOS + "/" + runtime.GOARCH
	}

	return DeviceInfo{Browser: client, OS: osName, Device: device}
}
