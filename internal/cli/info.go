package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/modu-ai/switch/internal/core/project"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the project record of a directory",
	Long: `Show the marker record of a project and whether it is registered.
Without --directory the nearest project above the working directory is used.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringP("directory", "d", "", "Project directory (default: nearest project above the current directory)")
}

func runInfo(cmd *cobra.Command, _ []string) error {
	dir := getStringFlag(cmd, "directory")
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		if dir, err = project.FindProjectRootOrCurrent(wd); err != nil {
			return err
		}
	}

	res, err := deps.Service.Info(cmd.Context(), dir)
	if err != nil {
		return err
	}

	rendered, err := renderMarkdown(infoMarkdown(res), deps.NoColor)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func infoMarkdown(res *project.InfoResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", res.Project.Name)
	fmt.Fprintf(&b, "- **ID:** `%s`\n", res.Project.ID)
	fmt.Fprintf(&b, "- **Directory:** `%s`\n", res.Directory)
	fmt.Fprintf(&b, "- **Marker:** `%s`\n", res.MarkerPath)
	registered := "no (run `switch add`)"
	if res.Registered {
		registered = "yes"
	}
	fmt.Fprintf(&b, "- **Registered:** %s\n", registered)

	b.WriteString("\n## Activation\n\n")
	if !res.Project.HasActivation() {
		b.WriteString("None. The editor opens directly.\n")
		return b.String()
	}
	b.WriteString("```sh\n")
	b.WriteString(strings.Join(res.Project.Activate, " "))
	b.WriteString("\n```\n")
	return b.String()
}

// renderMarkdown renders md for the terminal. noColor selects the plain style.
func renderMarkdown(md string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
