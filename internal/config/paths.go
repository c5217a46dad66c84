package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/switch/internal/defs"
)

// Dir returns the per-user configuration directory. SWITCH_CONFIG_DIR takes
// precedence over ~/.config/switch.
func Dir() (string, error) {
	if envDir := os.Getenv(defs.EnvConfigDir); envDir != "" {
		return filepath.Clean(envDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, defs.ConfigSubdir), nil
}

// RegistryPath returns the absolute path of the user registry file.
func RegistryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defs.RegistryFile), nil
}
