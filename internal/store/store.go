package store

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/modu-ai/switch/internal/config"
	"github.com/modu-ai/switch/internal/defs"
)

// @MX:ANCHOR: [AUTO] Store는 레지스트리와 마커 파일 접근의 유일한 진입점입니다.
// @MX:REASON: [AUTO] fan_in=4, project.Service, cli deps, store_test, project tests
// Store reads and writes the registry file and project marker files.
// There is no locking: concurrent writers from separate processes race and
// the last writer wins.
type Store struct {
	registryPath string
	logger       *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for the store.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// New creates a Store backed by the registry file at registryPath.
func New(registryPath string, opts ...Option) *Store {
	s := &Store{
		registryPath: filepath.Clean(registryPath),
		logger:       slog.Default().With("module", "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault creates a Store for the per-user registry location.
func NewDefault(opts ...Option) (*Store, error) {
	path, err := config.RegistryPath()
	if err != nil {
		return nil, err
	}
	return New(path, opts...), nil
}

// RegistryPath returns the registry file path.
func (s *Store) RegistryPath() string {
	return s.registryPath
}

// MarkerPath returns the marker file path inside dir.
func (s *Store) MarkerPath(dir string) string {
	return filepath.Join(dir, defs.MarkerFile)
}

// MarkerExists reports whether dir contains a marker file.
func (s *Store) MarkerExists(dir string) bool {
	info, err := os.Stat(s.MarkerPath(dir))
	return err == nil && !info.IsDir()
}

// encodeTOML marshals v and writes it to path atomically.
func encodeTOML(path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return atomicWrite(path, buf.Bytes())
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".switch-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
