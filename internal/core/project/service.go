package project

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/modu-ai/switch/internal/config"
	"github.com/modu-ai/switch/internal/shell"
	"github.com/modu-ai/switch/pkg/models"
)

// RecordStore persists the registry and the per-project marker files.
type RecordStore interface {
	LoadRegistry() (*models.Registry, error)
	SaveRegistry(reg *models.Registry) error
	LoadProject(dir string) (*models.ProjectRecord, error)
	SaveProject(dir string, p *models.ProjectRecord) error
	EnsureRegistry() error
	MarkerExists(dir string) bool
	MarkerPath(dir string) string
	RegistryPath() string
}

// Selector lets the user pick one reference. ok is false when nothing was chosen.
type Selector interface {
	Select(ctx context.Context, items []models.ProjectReference) (ref models.ProjectReference, ok bool, err error)
}

// EditorFinder resolves the editor and shell used to open a project.
type EditorFinder interface {
	FindEditor() (string, error)
	ActiveShell(fallback string) string
}

// Service implements the switch commands on top of a RecordStore.
type Service struct {
	store        RecordStore
	selector     Selector
	editors      EditorFinder
	defaultShell string
	newID        func() (string, error)
	logger       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithDefaultShell sets the shell used when $SHELL is unset.
func WithDefaultShell(sh string) Option {
	return func(s *Service) {
		if sh != "" {
			s.defaultShell = sh
		}
	}
}

// WithIDGenerator replaces the project id generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates a Service. selector and editors may be nil for
// callers that only register projects.
func NewService(st RecordStore, selector Selector, editors EditorFinder, opts ...Option) *Service {
	s := &Service{
		store:        st,
		selector:     selector,
		editors:      editors,
		defaultShell: config.DefaultShell,
		newID:        newProjectID,
		logger:       slog.Default().With("module", "project"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newProjectID returns a time-ordered UUIDv7 string.
func newProjectID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate project id: %w", err)
	}
	return id.String(), nil
}

func absDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory %q: %w", dir, err)
	}
	return abs, nil
}

// InitOptions configures Init.
type InitOptions struct {
	Name      string   // Display name. Defaults to the directory's last path segment.
	Directory string   // Project root. Defaults to the current directory.
	Activate  []string // Activation commands run before the editor.
}

// InitResult summarizes Init.
type InitResult struct {
	Project   *models.ProjectRecord
	Directory string
	Added     *AddResult
}

// AddResult summarizes Add.
type AddResult struct {
	Reference    models.ProjectReference
	AlreadyAdded bool
}

// RemoveResult summarizes Remove. Removed may be zero.
type RemoveResult struct {
	Project   *models.ProjectRecord
	Directory string
	Removed   int
}

// SwitchResult summarizes Switch. Launch is nil when nothing was selected.
type SwitchResult struct {
	Selected  bool
	Reference models.ProjectReference
	Project   *models.ProjectRecord
	Launch    *shell.Launch
}

// InfoResult describes one project directory.
type InfoResult struct {
	Project    *models.ProjectRecord
	Directory  string
	MarkerPath string
	Registered bool
}

// Init writes a new marker file into opts.Directory and registers it.
func (s *Service) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := absDir(opts.Directory)
	if err != nil {
		return nil, err
	}
	if s.store.MarkerExists(dir) {
		return nil, &AlreadyInitializedError{Dir: dir}
	}
	// A broken registry must not leave a marker behind.
	if _, err := s.store.LoadRegistry(); err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = filepath.Base(filepath.Clean(dir))
	}
	activate := opts.Activate
	if activate == nil {
		activate = []string{}
	}

	p := &models.ProjectRecord{ID: id, Name: name, Activate: activate}
	if err := s.store.SaveProject(dir, p); err != nil {
		return nil, err
	}
	s.logger.Info("project initialized", "id", p.ID, "name", p.Name, "dir", dir)

	added, err := s.Add(ctx, dir)
	if err != nil {
		return nil, err
	}
	return &InitResult{Project: p, Directory: dir, Added: added}, nil
}

// Add registers the project in dir. Adding a project whose id is already
// registered is reported through AddResult.AlreadyAdded and writes nothing.
func (s *Service) Add(ctx context.Context, dir string) (*AddResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := absDir(dir)
	if err != nil {
		return nil, err
	}

	p, err := s.store.LoadProject(dir)
	if err != nil {
		return nil, err
	}
	reg, err := s.store.LoadRegistry()
	if err != nil {
		return nil, err
	}

	ref := models.NewReference(p, dir)
	if !reg.Append(ref) {
		s.logger.Debug("project already registered", "id", p.ID)
		existing, _ := reg.Find(p.ID)
		return &AddResult{Reference: existing, AlreadyAdded: true}, nil
	}
	if err := s.store.SaveRegistry(reg); err != nil {
		return nil, err
	}
	s.logger.Info("project added", "id", p.ID, "dir", dir)
	return &AddResult{Reference: ref}, nil
}

// Remove drops every registry entry carrying the id of the project in dir.
func (s *Service) Remove(ctx context.Context, dir string) (*RemoveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := absDir(dir)
	if err != nil {
		return nil, err
	}

	p, err := s.store.LoadProject(dir)
	if err != nil {
		return nil, err
	}
	reg, err := s.store.LoadRegistry()
	if err != nil {
		return nil, err
	}

	removed := reg.RemoveID(p.ID)
	if removed > 0 {
		if err := s.store.SaveRegistry(reg); err != nil {
			return nil, err
		}
	}
	s.logger.Info("project removed", "id", p.ID, "entries", removed)
	return &RemoveResult{Project: p, Directory: dir, Removed: removed}, nil
}

// Switch asks the selector for a project and returns the launch that opens
// it. The caller runs the launch.
func (s *Service) Switch(ctx context.Context) (*SwitchResult, error) {
	reg, err := s.store.LoadRegistry()
	if err != nil {
		return nil, err
	}

	ref, ok, err := s.selector.Select(ctx, reg.Snapshot())
	if err != nil {
		return nil, err
	}
	if !ok {
		return &SwitchResult{}, nil
	}

	p, err := s.store.LoadProject(ref.Directory)
	if err != nil {
		return nil, err
	}
	editor, err := s.editors.FindEditor()
	if err != nil {
		return nil, err
	}

	var l *shell.Launch
	if p.HasActivation() {
		sh := s.editors.ActiveShell(s.defaultShell)
		l = shell.ActivatedLaunch(ref.Directory, sh, p.Activate, editor)
	} else {
		l = shell.EditorLaunch(ref.Directory, editor)
	}
	s.logger.Debug("switching project", "id", p.ID, "dir", ref.Directory, "cmd", l.Display)
	return &SwitchResult{Selected: true, Reference: ref, Project: p, Launch: l}, nil
}

// Config returns the launch that opens the registry file in the editor.
// The file is created if missing but not parsed, so a broken registry can
// still be repaired this way.
func (s *Service) Config(ctx context.Context) (*shell.Launch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	editor, err := s.editors.FindEditor()
	if err != nil {
		return nil, err
	}
	if err := s.store.EnsureRegistry(); err != nil {
		return nil, err
	}
	path := s.store.RegistryPath()
	return shell.FileLaunch(filepath.Dir(path), editor, path), nil
}

// List returns the registry in display order.
func (s *Service) List(ctx context.Context) (*models.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.LoadRegistry()
}

// Info loads the project in dir and reports whether it is registered.
func (s *Service) Info(ctx context.Context, dir string) (*InfoResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := absDir(dir)
	if err != nil {
		return nil, err
	}

	p, err := s.store.LoadProject(dir)
	if err != nil {
		return nil, err
	}
	reg, err := s.store.LoadRegistry()
	if err != nil {
		return nil, err
	}
	return &InfoResult{
		Project:    p,
		Directory:  dir,
		MarkerPath: s.store.MarkerPath(dir),
		Registered: reg.Contains(p.ID),
	}, nil
}
