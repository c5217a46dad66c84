package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/modu-ai/switch/internal/config"
	"github.com/modu-ai/switch/internal/core/project"
	"github.com/modu-ai/switch/internal/shell"
	"github.com/modu-ai/switch/internal/store"
	"github.com/modu-ai/switch/internal/ui"
	"github.com/modu-ai/switch/pkg/models"
)

type fakeSelector struct {
	pick func(items []models.ProjectReference) (models.ProjectReference, bool)
	err  error
}

func (f *fakeSelector) Select(_ context.Context, items []models.ProjectReference) (models.ProjectReference, bool, error) {
	if f.err != nil {
		return models.ProjectReference{}, false, f.err
	}
	if f.pick == nil {
		return models.ProjectReference{}, false, nil
	}
	ref, ok := f.pick(items)
	return ref, ok, nil
}

type fakeEditors struct{}

func (fakeEditors) FindEditor() (string, error)        { return "/usr/bin/vim", nil }
func (fakeEditors) ActiveShell(fallback string) string { return fallback }

type fakePrompt struct {
	answers *ui.InitAnswers
	err     error
	gotName string
}

func (f *fakePrompt) Run(defaultName string) (*ui.InitAnswers, error) {
	f.gotName = defaultName
	return f.answers, f.err
}

type fakeRunner struct {
	launches []*shell.Launch
	err      error
}

func (f *fakeRunner) Run(_ context.Context, l *shell.Launch) error {
	f.launches = append(f.launches, l)
	return f.err
}

type cliEnv struct {
	root     string
	store    *store.Store
	selector *fakeSelector
	prompt   *fakePrompt
	runner   *fakeRunner
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCLIEnv installs test dependencies backed by a registry in a temp dir.
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	t.Setenv("SWITCH_CONFIG_DIR", filepath.Join(root, "config"))

	env := &cliEnv{
		root:     root,
		store:    store.New(filepath.Join(root, "config", "config.toml"), store.WithLogger(discardLogger())),
		selector: &fakeSelector{},
		prompt:   &fakePrompt{},
		runner:   &fakeRunner{},
	}
	SetDeps(&Dependencies{
		Settings: config.NewDefaultSettings(),
		Store:    env.store,
		Service:  project.NewService(env.store, env.selector, fakeEditors{}, project.WithLogger(discardLogger())),
		Prompt:   env.prompt,
		Runner:   env.runner,
		Logger:   discardLogger(),
		NoColor:  true,
	})
	t.Cleanup(func() { SetDeps(nil) })
	return env
}

func (e *cliEnv) dir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(e.root, "src", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func (e *cliEnv) registry(t *testing.T) *models.Registry {
	t.Helper()
	reg, err := e.store.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	return reg
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args through Execute and returns
// stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return stdout.String(), stderr.String(), err
}
