package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/switch/pkg/models"
)

var listFormats = []string{"table", "yaml"}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List registered projects",
	Args:    cobra.NoArgs,
	PreRunE: validateListFlags,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("format", "f", "table", "Output format: table or yaml")
}

func validateListFlags(cmd *cobra.Command, _ []string) error {
	format := getStringFlag(cmd, "format")
	if !slices.Contains(listFormats, format) {
		return &usageError{
			cmd: cmd.CommandPath(),
			err: fmt.Errorf("invalid --format value %q: must be one of: table, yaml", format),
		}
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	reg, err := deps.Service.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if getStringFlag(cmd, "format") == "yaml" {
		return writeRegistryYAML(out, reg)
	}

	if reg.Len() == 0 {
		_, _ = fmt.Fprintln(out, cliMuted.Render("no projects registered."))
		_, _ = fmt.Fprintf(out, "  %s run 'switch init' in a project directory\n", cliMuted.Render("hint:"))
		return nil
	}
	_, _ = fmt.Fprintln(out, renderRegistryTable(reg))
	return nil
}

func writeRegistryYAML(w io.Writer, reg *models.Registry) error {
	doc := struct {
		Projects []models.ProjectReference `yaml:"projects"`
	}{Projects: reg.Snapshot()}
	if doc.Projects == nil {
		doc.Projects = []models.ProjectReference{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	return enc.Close()
}

func renderRegistryTable(reg *models.Registry) string {
	rows := make([][]string, 0, reg.Len())
	for _, ref := range reg.Projects {
		rows = append(rows, []string{ref.Name, ref.Directory, ref.ID})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(cliBorder).
		Headers("NAME", "DIRECTORY", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Inherit(cliPrimary).Bold(true)
			case col == 2:
				return st.Inherit(cliMuted)
			}
			return st
		}).
		String()
}
