package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the kvedit home directory.
const EnvHome = "KVEDIT_HOME"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns $KVEDIT_HOME, or ~/.kvedit when it is unset.
func Dir() string {
	if d := os.Getenv(EnvHome); d != "" {
		return d
	}
	return filepath.Join(home(), ".kvedit")
}

// ConfigFile returns ~/.kvedit/config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns ~/.kvedit/kvedit.log, where the terminal editor logs.
func LogFile() string {
	return filepath.Join(Dir(), "kvedit.log")
}
