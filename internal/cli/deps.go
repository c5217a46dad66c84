// Package cli provides the Cobra command tree and dependency injection
// wiring for switch. This file defines the Dependencies struct
// (Composition Root) that wires the record store, the environment probe,
// the selector and the command service together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/modu-ai/switch/internal/config"
	"github.com/modu-ai/switch/internal/core/project"
	"github.com/modu-ai/switch/internal/shell"
	"github.com/modu-ai/switch/internal/store"
	"github.com/modu-ai/switch/internal/ui"
)

// Prompter asks the user for init details.
type Prompter interface {
	Run(defaultName string) (*ui.InitAnswers, error)
}

// Launcher executes a launch directive returned by the service.
type Launcher interface {
	Run(ctx context.Context, l *shell.Launch) error
}

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Settings *config.Settings
	Store    *store.Store
	Service  *project.Service
	Prompt   Prompter
	Runner   Launcher
	Logger   *slog.Logger
	NoColor  bool
}

// DepOptions carries the global flag values that affect wiring.
type DepOptions struct {
	Verbose   bool
	NoColor   bool
	LogOutput io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root that wires all domain modules
// @MX:REASON: [AUTO] fan_in=2, called from root.go PersistentPreRunE and deps_test.go
// InitDependencies loads the settings and wires all domain dependencies.
func InitDependencies(opts DepOptions) error {
	d, err := NewDependencies(opts)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// NewDependencies builds a Dependencies from the user settings and opts.
func NewDependencies(opts DepOptions) (*Dependencies, error) {
	settings, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	noColor := opts.NoColor || settings.NoColor
	level := settings.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := newLogger(out, level, noColor)
	slog.SetDefault(logger)
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	st, err := store.NewDefault(store.WithLogger(logger.With("module", "store")))
	if err != nil {
		return nil, err
	}

	probe := shell.NewProbe(settings.Editors)
	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
	selector := ui.NewSelector(theme, hm, ui.WithSelectorLogger(logger.With("module", "ui")))

	svc := project.NewService(st, selector, probe,
		project.WithLogger(logger.With("module", "project")),
		project.WithDefaultShell(settings.Shell),
	)

	return &Dependencies{
		Settings: settings,
		Store:    st,
		Service:  svc,
		Prompt:   ui.NewInitForm(theme, hm),
		Runner:   shell.NewRunner(shell.WithRunnerLogger(logger.With("module", "shell"))),
		Logger:   logger,
		NoColor:  noColor,
	}, nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler
// writing to w. Unknown levels fall back to warn.
func newLogger(w io.Writer, level string, noColor bool) *slog.Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.WarnLevel
	}
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "switch",
		ReportTimestamp: false,
	})
	if noColor {
		h.SetColorProfile(termenv.Ascii)
	}
	return slog.New(h)
}
