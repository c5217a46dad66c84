package config

// Default value constants.
const (
	DefaultLogLevel = "warn"
	DefaultShell    = "/bin/bash"
)

// DefaultEditors is the editor preference order used when no settings
// file overrides it.
var DefaultEditors = []string{"nvim", "vim", "vi", "nano", "emacs"}

// NewDefaultSettings returns settings populated with compiled defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		Editors:  append([]string(nil), DefaultEditors...),
		LogLevel: DefaultLogLevel,
	}
}
