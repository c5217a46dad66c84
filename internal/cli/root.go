package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/switch/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "switch",
	Short: "Switch between registered projects",
	Long: `switch keeps a list of your projects and opens the one you pick
in your editor, running its activation commands first.

Running switch without a subcommand opens the project selector.

Examples:
  switch init -a "source .venv/bin/activate"   Mark the current directory as a project
  switch add --directory ~/src/api             Register an existing project
  switch                                       Pick a project and open it`,
	Version:           version.GetVersion(),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareDependencies,
	RunE:              runSwitch,
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the switch CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/switch/main.go and root_test.go
// Execute runs the root command and prints fatal errors with their hints.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printFatal(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("switch %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd.CommandPath(), err: err}
	})
}

// prepareDependencies wires the dependencies on first use. Tests install
// their own through SetDeps before executing a command.
func prepareDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}
	return InitDependencies(DepOptions{
		Verbose:   getBoolFlag(cmd, "verbose"),
		NoColor:   getBoolFlag(cmd, "no-color"),
		LogOutput: cmd.ErrOrStderr(),
	})
}
