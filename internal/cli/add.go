package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an initialized project",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addDirectoryFlag(addCmd, "Project root directory")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	dir, err := directoryFlag(cmd)
	if err != nil {
		return err
	}
	res, err := deps.Service.Add(cmd.Context(), dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.AlreadyAdded {
		_, _ = fmt.Fprintf(out, "%s project '%s' already added.\n", symWarning(), res.Reference)
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s added '%s' from %s\n", symSuccess(), res.Reference, res.Reference.Directory)
	return nil
}
