package config

// Settings holds the user-tunable behaviour of switch.
type Settings struct {
	// Editors is the preference-ordered list of editor candidates.
	Editors []string `yaml:"editors"`
	// Shell overrides $SHELL for activation commands.
	Shell string `yaml:"shell"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// NoColor disables styled terminal output.
	NoColor bool `yaml:"no_color"`
}
