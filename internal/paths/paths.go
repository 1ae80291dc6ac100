package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// UserPath is the per-user data directory, used as the default location of
// the config file.
func UserPath() string {
	return userPath(runtime.GOOS, os.Getenv)
}

func userPath(goos string, getenv func(string) string) string {
	if goos == "windows" {
		return filepath.Join(getenv("LOCALAPPDATA"), "AnmitsuAzuki")
	}
	return filepath.Join(getenv("HOME"), ".anmitsu")
}
