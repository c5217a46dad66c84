package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringArrayFlag retrieves a repeatable string flag value from the command.
func getStringArrayFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil
	}
	return val
}

// addDirectoryFlag registers the --directory/-d flag shared by project commands.
func addDirectoryFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().StringP("directory", "d", "", usage+" (default: current directory)")
}

// directoryFlag returns the absolute --directory value, defaulting to the
// working directory.
func directoryFlag(cmd *cobra.Command) (string, error) {
	dir := getStringFlag(cmd, "directory")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory %q: %w", dir, err)
	}
	return abs, nil
}
