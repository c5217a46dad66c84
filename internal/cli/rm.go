package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm",
	Aliases: []string{"remove"},
	Short:   "Remove a project from the registry",
	Long: `Remove every registry entry carrying the id of the project in the
directory. The marker file is left in place.`,
	Args: cobra.NoArgs,
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
	addDirectoryFlag(rmCmd, "Project root directory")
}

func runRm(cmd *cobra.Command, _ []string) error {
	dir, err := directoryFlag(cmd)
	if err != nil {
		return err
	}
	res, err := deps.Service.Remove(cmd.Context(), dir)
	if err != nil {
		return err
	}

	sym := symSuccess()
	if res.Removed == 0 {
		sym = symWarning()
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s removed '%s'\n", sym, res.Project)
	return nil
}
