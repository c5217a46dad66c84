package defs

// File names used across the project.
const (
	// MarkerFile is the per-project marker record stored in the project root.
	MarkerFile = ".switch.toml"

	// RegistryFile is the per-user registry of known projects.
	RegistryFile = "config.toml"

	// SettingsYAML is the optional per-user settings file.
	SettingsYAML = "settings.yaml"

	// ConfigSubdir is the registry directory relative to the home directory.
	ConfigSubdir = ".config/switch"
)

// Environment variables read by switch.
const (
	EnvConfigDir       = "SWITCH_CONFIG_DIR"
	EnvEditor          = "SWITCH_EDITOR"
	EnvLogLevel        = "SWITCH_LOG_LEVEL"
	EnvNoColor         = "SWITCH_NO_COLOR"
	EnvShellActionFile = "SWITCH_SHELL_ACTION_FILE"
	EnvShell           = "SHELL"
	EnvPath            = "PATH"
)
