package cli

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open the project registry in the editor",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	l, err := deps.Service.Config(cmd.Context())
	if err != nil {
		return err
	}
	return runLaunch(cmd.Context(), cmd.OutOrStdout(), l)
}
