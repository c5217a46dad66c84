package shell

import (
	"os"
	"path/filepath"

	"github.com/modu-ai/switch/internal/defs"
)

// Probe finds executables on the search path. The environment lookup is
// injectable so tests can provide their own PATH.
type Probe struct {
	candidates []string
	getenv     func(string) string
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithGetenv sets the environment lookup (used for testing).
func WithGetenv(fn func(string) string) ProbeOption {
	return func(p *Probe) {
		p.getenv = fn
	}
}

// NewProbe creates a Probe that prefers editors in the given order.
func NewProbe(candidates []string, opts ...ProbeOption) *Probe {
	p := &Probe{
		candidates: append([]string(nil), candidates...),
		getenv:     os.Getenv,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FindEditor returns the full path of the first candidate that is an
// executable on PATH.
func (p *Probe) FindEditor() (string, error) {
	for _, name := range p.candidates {
		if path, ok := p.lookPath(name); ok {
			return path, nil
		}
	}
	return "", &NoEditorFoundError{Candidates: append([]string(nil), p.candidates...)}
}

// IsExecutableOnPath reports whether name is an executable regular file in
// any PATH directory.
func (p *Probe) IsExecutableOnPath(name string) bool {
	_, ok := p.lookPath(name)
	return ok
}

// ActiveShell returns $SHELL, or fallback when it is unset.
func (p *Probe) ActiveShell(fallback string) string {
	if sh := p.getenv(defs.EnvShell); sh != "" {
		return sh
	}
	return fallback
}

func (p *Probe) lookPath(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	// Absolute or relative paths are checked as-is.
	if filepath.Base(name) != name {
		return name, isExecutableFile(name)
	}
	for _, dir := range filepath.SplitList(p.getenv(defs.EnvPath)) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, name)
		if isExecutableFile(full) {
			return full, true
		}
	}
	return "", false
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
