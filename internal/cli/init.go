package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/switch/internal/core/project"
	"github.com/modu-ai/switch/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Mark a directory as a project and register it",
	Long: `Write a .switch.toml marker into the directory and add the project
to the registry.

Activation commands run in the project directory before the editor opens.
Repeat --activate to pass several tokens; they are joined with spaces.

Examples:
  switch init                              Use the directory name as project name
  switch init -n api -d ~/src/api          Name the project explicitly
  switch init -a source -a .venv/bin/activate
  switch init --interactive                Ask for name and activation commands`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("name", "n", "", "Project name (default: directory name)")
	addDirectoryFlag(initCmd, "Project root directory")
	initCmd.Flags().StringArrayP("activate", "a", nil, "Activation command token (repeatable)")
	initCmd.Flags().BoolP("interactive", "i", false, "Ask for name and activation commands")
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	dir, err := directoryFlag(cmd)
	if err != nil {
		return err
	}
	opts := project.InitOptions{
		Name:      getStringFlag(cmd, "name"),
		Directory: dir,
		Activate:  getStringArrayFlag(cmd, "activate"),
	}

	if getBoolFlag(cmd, "interactive") {
		defaultName := opts.Name
		if defaultName == "" {
			defaultName = filepath.Base(dir)
		}
		answers, err := deps.Prompt.Run(defaultName)
		if errors.Is(err, ui.ErrCancelled) {
			_, _ = fmt.Fprintln(out, cliMuted.Render("init cancelled."))
			return nil
		}
		if err != nil {
			return err
		}
		opts.Name = answers.Name
		opts.Activate = append(opts.Activate, answers.Activate...)
	}

	res, err := deps.Service.Init(cmd.Context(), opts)
	if err != nil {
		return err
	}

	details := []string{
		field("Name", res.Project.Name),
		field("ID", res.Project.ID),
		field("Marker", deps.Store.MarkerPath(res.Directory)),
	}
	if res.Project.HasActivation() {
		details = append(details, field("Activate", fmt.Sprintf("%q", res.Project.Activate)))
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard(
		fmt.Sprintf("initialized new project %s in %s", res.Project, res.Directory),
		details...,
	))
	return nil
}
