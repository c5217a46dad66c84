package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/modu-ai/switch/internal/shell"
)

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Pick a project and open it in the editor",
	Long: `Open the project selector. Type to filter by name, use the arrow keys
to move, enter to open the highlighted project and esc or ctrl+c to exit.

The selected project's activation commands run before the editor starts.
When SWITCH_SHELL_ACTION_FILE is set, a "cd" line for the project is written
there so a wrapping shell function can follow.`,
	Args: cobra.NoArgs,
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	res, err := deps.Service.Switch(cmd.Context())
	if err != nil {
		return err
	}
	if !res.Selected {
		_, _ = fmt.Fprintln(out, cliMuted.Render("no project selected."))
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s selected '%s' switching to '%s'\n",
		symSuccess(), cliPrimary.Render(res.Project.Name), res.Reference.Directory)
	if res.Project.HasActivation() {
		_, _ = fmt.Fprintf(out, "  activating project with '%s'\n", shell.ActivationCommand(res.Project.Activate))
	}
	return runLaunch(cmd.Context(), out, res.Launch)
}

// runLaunch executes l. The editor's own exit status is not an error.
func runLaunch(ctx context.Context, out io.Writer, l *shell.Launch) error {
	_, _ = fmt.Fprintf(out, "  opening in editor '%s' ...\n", l.Display)

	err := deps.Runner.Run(ctx, l)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		deps.Logger.Debug("editor exited with non-zero status", "code", exitErr.ExitCode())
		return nil
	}
	return err
}
