// Package platform answers per-OS questions for the test harness.
//
// Every function takes the target GOOS explicitly so behavior for other
// platforms can be exercised from any host. Use Current() for the running
// system.
package platform

import (
	"path/filepath"
	goruntime "runtime"
)

// OS names as reported by runtime.GOOS.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	FreeBSD = "freebsd"
)

// PingHost is the destination used by capture tests that generate traffic.
const PingHost = "www.wireshark.org"

// Current returns the GOOS of the running process.
func Current() string {
	return goruntime.GOOS
}

// ExeSuffix returns the file suffix executables carry on goos.
func ExeSuffix(goos string) string {
	if goos == Windows {
		return ".exe"
	}
	return ""
}

// HomeEnvVar returns the environment variable the tools consult to find
// their per-user configuration.
func HomeEnvVar(goos string) string {
	if goos == Windows {
		return "APPDATA"
	}
	return "HOME"
}

// ConfigDir returns the per-user Wireshark configuration directory below home.
func ConfigDir(goos, home string) string {
	if goos == Windows {
		return filepath.Join(home, "Wireshark")
	}
	return filepath.Join(home, ".config", "wireshark")
}

// CanMkfifo reports whether named pipes can be used as capture sources.
func CanMkfifo(goos string) bool {
	return goos != Windows
}

// CanDisplay reports whether the GUI can be started by tests.
// Qt needs XKEYBOARD and Xrender, which headless X servers like Xvnc
// don't provide, so only Windows and macOS qualify.
func CanDisplay(goos string) bool {
	return goos == Windows || goos == Darwin
}

// DefaultCanCapture reports whether unprivileged capture is assumed to work.
func DefaultCanCapture(goos string) bool {
	return goos == Windows || goos == Darwin
}

// PingCommand returns an argument list that pings PingHost for roughly a
// minute. It returns nil on platforms with no known ping convention.
func PingCommand(goos string) []string {
	switch goos {
	case Windows:
		return []string{"ping", "-n", "60", "-l", "100", PingHost}
	case Linux, FreeBSD:
		return []string{"ping", "-c", "240", "-s", "100", "-i", "0.25", PingHost}
	case Darwin:
		return []string{"ping", "-c", "1", "-g", "1", "-G", "240", "-i", "0.25", PingHost}
	default:
		// Flags for the other BSDs and Solaris are unknown.
		return nil
	}
}
