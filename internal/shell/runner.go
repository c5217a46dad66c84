package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/modu-ai/switch/internal/defs"
)

// ExecFunc runs a prepared command to completion.
type ExecFunc func(cmd *exec.Cmd) error

// Runner carries out a Launch: it changes the working directory, records a
// shell action for a wrapping shell function, and runs the subprocess
// attached to the terminal.
type Runner struct {
	exec   ExecFunc
	chdir  func(string) error
	getenv func(string) string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithExecFunc sets a custom command runner (used for testing).
func WithExecFunc(fn ExecFunc) RunnerOption {
	return func(r *Runner) {
		r.exec = fn
	}
}

// WithChdir sets a custom working-directory changer (used for testing).
func WithChdir(fn func(string) error) RunnerOption {
	return func(r *Runner) {
		r.chdir = fn
	}
}

// WithRunnerGetenv sets the environment lookup (used for testing).
func WithRunnerGetenv(fn func(string) string) RunnerOption {
	return func(r *Runner) {
		r.getenv = fn
	}
}

// WithStdio sets the streams inherited by the subprocess.
func WithStdio(in io.Reader, out, errOut io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin, r.stdout, r.stderr = in, out, errOut
	}
}

// WithRunnerLogger sets the logger for the runner.
func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner bound to the process terminal.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		exec:   func(cmd *exec.Cmd) error { return cmd.Run() },
		chdir:  os.Chdir,
		getenv: os.Getenv,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.Default().With("module", "shell.runner"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run changes into l.Dir and blocks until the launched process exits.
// The shell action is only recorded for launches that set Follow.
func (r *Runner) Run(ctx context.Context, l *Launch) error {
	if l.Dir != "" {
		if err := r.chdir(l.Dir); err != nil {
			return fmt.Errorf("change directory to %s: %w", l.Dir, err)
		}
		if l.Follow {
			if err := r.writeShellAction(l.Dir); err != nil {
				r.logger.Warn("failed to write shell action", "error", err)
			}
		}
	}

	cmd := exec.CommandContext(ctx, l.Path, l.Args...)
	cmd.Dir = l.Dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("launching", "dir", l.Dir, "command", l.Display)

	if err := r.exec(cmd); err != nil {
		return fmt.Errorf("run %s: %w", l.Display, err)
	}
	return nil
}

// writeShellAction writes `cd '<dir>'` to $SWITCH_SHELL_ACTION_FILE so a shell
// wrapper can move the parent shell after the process exits.
func (r *Runner) writeShellAction(dir string) error {
	actionPath := strings.TrimSpace(r.getenv(defs.EnvShellActionFile))
	if actionPath == "" {
		return nil
	}
	line := fmt.Sprintf("cd %s\n", Quote(dir))
	return os.WriteFile(actionPath, []byte(line), 0o600)
}
