package project

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/modu-ai/switch/internal/defs"
	"github.com/modu-ai/switch/internal/shell"
	"github.com/modu-ai/switch/internal/store"
	"github.com/modu-ai/switch/pkg/models"
)

type fakeSelector struct {
	pick   func(items []models.ProjectReference) (models.ProjectReference, bool)
	err    error
	called bool
	got    []models.ProjectReference
}

func (f *fakeSelector) Select(_ context.Context, items []models.ProjectReference) (models.ProjectReference, bool, error) {
	f.called = true
	f.got = items
	if f.err != nil {
		return models.ProjectReference{}, false, f.err
	}
	if f.pick == nil {
		return models.ProjectReference{}, false, nil
	}
	ref, ok := f.pick(items)
	return ref, ok, nil
}

type fakeEditors struct {
	editor string
	shell  string
	err    error
}

func (f *fakeEditors) FindEditor() (string, error) { return f.editor, f.err }

func (f *fakeEditors) ActiveShell(fallback string) string {
	if f.shell == "" {
		return fallback
	}
	return f.shell
}

type testEnv struct {
	store    *store.Store
	selector *fakeSelector
	editors  *fakeEditors
	svc      *Service
	root     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		store:    store.New(filepath.Join(root, "config", "config.toml"), store.WithLogger(logger)),
		selector: &fakeSelector{},
		editors:  &fakeEditors{editor: "/usr/bin/nvim"},
		root:     root,
	}
	env.svc = NewService(env.store, env.selector, env.editors, WithLogger(logger))
	return env
}

func (e *testEnv) projectDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(e.root, "src", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func (e *testEnv) registry(t *testing.T) *models.Registry {
	t.Helper()
	reg, err := e.store.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	return reg
}

func TestInit_WritesMarkerAndRegisters(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "web-app")

	res, err := env.svc.Init(context.Background(), InitOptions{Directory: dir + "/./"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if res.Project.Name != "web-app" {
		t.Errorf("Name = %q, want directory name", res.Project.Name)
	}
	if res.Directory != dir {
		t.Errorf("Directory = %q, want %q", res.Directory, dir)
	}
	if _, err := uuid.Parse(res.Project.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", res.Project.ID, err)
	}
	if res.Project.Activate == nil || len(res.Project.Activate) != 0 {
		t.Errorf("Activate = %#v, want empty", res.Project.Activate)
	}
	if res.Added == nil || res.Added.AlreadyAdded {
		t.Errorf("Added = %+v, want a fresh registration", res.Added)
	}

	loaded, err := env.store.LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, res.Project) {
		t.Errorf("marker = %+v, want %+v", loaded, res.Project)
	}

	reg := env.registry(t)
	want := models.ProjectReference{ID: res.Project.ID, Name: "web-app", Directory: dir}
	if reg.Len() != 1 || reg.Projects[0] != want {
		t.Errorf("registry = %+v, want [%+v]", reg.Projects, want)
	}
}

func TestInit_NameAndActivate(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "api")
	env.svc = NewService(env.store, env.selector, env.editors,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithIDGenerator(func() (string, error) { return "fixed-id", nil }),
	)

	res, err := env.svc.Init(context.Background(), InitOptions{
		Name:      "Backend",
		Directory: dir,
		Activate:  []string{"source", ".venv/bin/activate"},
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	want := &models.ProjectRecord{ID: "fixed-id", Name: "Backend", Activate: []string{"source", ".venv/bin/activate"}}
	if !reflect.DeepEqual(res.Project, want) {
		t.Errorf("Project = %+v, want %+v", res.Project, want)
	}
}

func TestInit_IDsAreUnique(t *testing.T) {
	env := newTestEnv(t)
	a, err := env.svc.Init(context.Background(), InitOptions{Directory: env.projectDir(t, "a")})
	if err != nil {
		t.Fatalf("Init(a) error = %v", err)
	}
	b, err := env.svc.Init(context.Background(), InitOptions{Directory: env.projectDir(t, "b")})
	if err != nil {
		t.Fatalf("Init(b) error = %v", err)
	}
	if a.Project.ID == b.Project.ID {
		t.Errorf("ids collide: %s", a.Project.ID)
	}
}

// Scenario D.
func TestInit_AlreadyInitialized(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "proj")
	marker := filepath.Join(dir, defs.MarkerFile)
	original := "id = \"keep\"\nname = \"keep\"\n"
	if err := os.WriteFile(marker, []byte(original), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	_, err := env.svc.Init(context.Background(), InitOptions{Directory: dir, Name: "other"})
	var aie *AlreadyInitializedError
	if !errors.As(err, &aie) {
		t.Fatalf("Init() error = %v, want *AlreadyInitializedError", err)
	}
	if !errors.Is(err, ErrProjectExists) {
		t.Error("error should wrap ErrProjectExists")
	}
	if aie.Hint() == "" {
		t.Error("Hint() should suggest a command")
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if string(data) != original {
		t.Errorf("marker modified: %q", data)
	}
	if _, err := os.Stat(env.store.RegistryPath()); !os.IsNotExist(err) {
		t.Errorf("registry should not be touched, stat err = %v", err)
	}
}

func TestInit_MalformedRegistryLeavesNoMarker(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "proj")
	path := env.store.RegistryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[[projects]\nbroken"), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	_, err := env.svc.Init(context.Background(), InitOptions{Directory: dir})
	if !errors.Is(err, store.ErrParse) {
		t.Fatalf("Init() error = %v, want store.ErrParse", err)
	}
	if env.store.MarkerExists(dir) {
		t.Error("marker should not be written when the registry is unreadable")
	}
}

// Scenario C.
func TestAdd_Twice(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "proj")
	if err := env.store.SaveProject(dir, &models.ProjectRecord{ID: "p1", Name: "proj"}); err != nil {
		t.Fatalf("SaveProject() error = %v", err)
	}

	first, err := env.svc.Add(context.Background(), dir)
	if err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if first.AlreadyAdded {
		t.Fatal("first Add() should register the project")
	}
	before, err := os.ReadFile(env.store.RegistryPath())
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}

	second, err := env.svc.Add(context.Background(), dir)
	if err != nil {
		t.Fatalf("second Add() error = %v", err)
	}
	if !second.AlreadyAdded {
		t.Error("second Add() should report already added")
	}
	after, err := os.ReadFile(env.store.RegistryPath())
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("registry changed:\nbefore: %s\nafter: %s", before, after)
	}
	if env.registry(t).Len() != 1 {
		t.Errorf("registry Len() = %d, want 1", env.registry(t).Len())
	}
}

func TestAdd_NotAProject(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Add(context.Background(), env.projectDir(t, "plain"))
	if !errors.Is(err, store.ErrNotAProject) {
		t.Errorf("Add() error = %v, want ErrNotAProject", err)
	}
}

func TestRemove(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "proj")
	if err := env.store.SaveProject(dir, &models.ProjectRecord{ID: "p1", Name: "proj"}); err != nil {
		t.Fatalf("SaveProject() error = %v", err)
	}
	seed := &models.Registry{Projects: []models.ProjectReference{
		{ID: "p1", Name: "proj", Directory: dir},
		{ID: "p2", Name: "other", Directory: "/src/other"},
		{ID: "p1", Name: "proj", Directory: "/old/location"},
	}}
	if err := env.store.SaveRegistry(seed); err != nil {
		t.Fatalf("SaveRegistry() error = %v", err)
	}

	res, err := env.svc.Remove(context.Background(), dir)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if res.Removed != 2 {
		t.Errorf("Removed = %d, want 2", res.Removed)
	}
	reg := env.registry(t)
	if reg.Len() != 1 || reg.Projects[0].ID != "p2" {
		t.Errorf("registry = %+v, want only p2", reg.Projects)
	}
}

// Scenario E.
func TestRemove_NotRegistered(t *testing.T) {
	env := newTestEnv(t)
	dir := env.projectDir(t, "proj")
	if err := env.store.SaveProject(dir, &models.ProjectRecord{ID: "p1", Name: "proj"}); err != nil {
		t.Fatalf("SaveProject() error = %v", err)
	}
	seed := &models.Registry{Projects: []models.ProjectReference{{ID: "p2", Name: "other", Directory: "/src/other"}}}
	if err := env.store.SaveRegistry(seed); err != nil {
		t.Fatalf("SaveRegistry() error = %v", err)
	}

	res, err := env.svc.Remove(context.Background(), dir)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if res.Removed != 0 {
		t.Errorf("Removed = %d, want 0", res.Removed)
	}
	if res.Project.Name != "proj" {
		t.Errorf("Project.Name = %q, want proj", res.Project.Name)
	}
	if reg := env.registry(t); !reflect.DeepEqual(reg, seed) {
		t.Errorf("registry = %+v, want %+v", reg, seed)
	}
}

func seedProjects(t *testing.T, env *testEnv) []models.ProjectReference {
	t.Helper()
	var refs []models.ProjectReference
	for _, p := range []*models.ProjectRecord{
		{ID: "p1", Name: "alpha"},
		{ID: "p2", Name: "beta", Activate: []string{"source", "env.sh"}},
	} {
		dir := env.projectDir(t, p.Name)
		if err := env.store.SaveProject(dir, p); err != nil {
			t.Fatalf("SaveProject() error = %v", err)
		}
		refs = append(refs, models.NewReference(p, dir))
	}
	if err := env.store.SaveRegistry(&models.Registry{Projects: refs}); err != nil {
		t.Fatalf("SaveRegistry() error = %v", err)
	}
	return refs
}

func TestSwitch_PlainEditor(t *testing.T) {
	env := newTestEnv(t)
	refs := seedProjects(t, env)
	env.selector.pick = func(items []models.ProjectReference) (models.ProjectReference, bool) {
		return items[0], true
	}

	res, err := env.svc.Switch(context.Background())
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if !reflect.DeepEqual(env.selector.got, refs) {
		t.Errorf("selector items = %+v, want %+v", env.selector.got, refs)
	}
	if !res.Selected || res.Reference != refs[0] {
		t.Fatalf("result = %+v, want alpha selected", res)
	}
	want := shell.EditorLaunch(refs[0].Directory, "/usr/bin/nvim")
	if !reflect.DeepEqual(res.Launch, want) {
		t.Errorf("Launch = %+v, want %+v", res.Launch, want)
	}
}

func TestSwitch_ActivatedEditor(t *testing.T) {
	env := newTestEnv(t)
	refs := seedProjects(t, env)
	env.editors.shell = "/bin/zsh"
	env.selector.pick = func(items []models.ProjectReference) (models.ProjectReference, bool) {
		return items[1], true
	}

	res, err := env.svc.Switch(context.Background())
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	l := res.Launch
	if l.Dir != refs[1].Directory || l.Path != "/bin/zsh" {
		t.Errorf("Launch = %+v", l)
	}
	wantArgs := []string{"-c", "source env.sh && '/usr/bin/nvim' ."}
	if !reflect.DeepEqual(l.Args, wantArgs) {
		t.Errorf("Args = %q, want %q", l.Args, wantArgs)
	}
}

func TestSwitch_DefaultShellFallback(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)
	env.svc = NewService(env.store, env.selector, env.editors,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithDefaultShell("/bin/sh"),
	)
	env.selector.pick = func(items []models.ProjectReference) (models.ProjectReference, bool) {
		return items[1], true
	}

	res, err := env.svc.Switch(context.Background())
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if res.Launch.Path != "/bin/sh" {
		t.Errorf("Path = %q, want /bin/sh", res.Launch.Path)
	}
}

func TestSwitch_NoSelection(t *testing.T) {
	env := newTestEnv(t)
	seedProjects(t, env)

	res, err := env.svc.Switch(context.Background())
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if res.Selected || res.Launch != nil {
		t.Errorf("result = %+v, want no selection", res)
	}
}

func TestSwitch_EmptyRegistry(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.Switch(context.Background())
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if !env.selector.called {
		t.Error("selector should run even with an empty registry")
	}
	if res.Selected {
		t.Error("empty registry should give no selection")
	}
}

func TestSwitch_Errors(t *testing.T) {
	t.Run("selector", func(t *testing.T) {
		env := newTestEnv(t)
		env.selector.err = errors.New("tty gone")
		if _, err := env.svc.Switch(context.Background()); err == nil {
			t.Error("Switch() should return the selector error")
		}
	})

	t.Run("no editor", func(t *testing.T) {
		env := newTestEnv(t)
		seedProjects(t, env)
		env.editors.err = &shell.NoEditorFoundError{Candidates: []string{"nvim"}}
		env.selector.pick = func(items []models.ProjectReference) (models.ProjectReference, bool) {
			return items[0], true
		}
		_, err := env.svc.Switch(context.Background())
		if !errors.Is(err, shell.ErrNoEditorFound) {
			t.Errorf("Switch() error = %v, want ErrNoEditorFound", err)
		}
	})

	t.Run("marker deleted", func(t *testing.T) {
		env := newTestEnv(t)
		refs := seedProjects(t, env)
		if err := os.Remove(env.store.MarkerPath(refs[0].Directory)); err != nil {
			t.Fatalf("remove marker: %v", err)
		}
		env.selector.pick = func(items []models.ProjectReference) (models.ProjectReference, bool) {
			return items[0], true
		}
		_, err := env.svc.Switch(context.Background())
		if !errors.Is(err, store.ErrNotAProject) {
			t.Errorf("Switch() error = %v, want ErrNotAProject", err)
		}
	})
}

func TestConfig(t *testing.T) {
	env := newTestEnv(t)

	l, err := env.svc.Config(context.Background())
	if err != nil {
		t.Fatalf("Config() error = %v", err)
	}
	path := env.store.RegistryPath()
	if l.Path != "/usr/bin/nvim" || l.Dir != filepath.Dir(path) {
		t.Errorf("Launch = %+v", l)
	}
	if !reflect.DeepEqual(l.Args, []string{path}) {
		t.Errorf("Args = %q, want [%q]", l.Args, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("registry file should be created: %v", err)
	}
}

func TestConfig_MalformedRegistryStillOpens(t *testing.T) {
	env := newTestEnv(t)
	path := env.store.RegistryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[[projects]\nbroken"), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	if _, err := env.svc.Config(context.Background()); err != nil {
		t.Errorf("Config() error = %v", err)
	}
}

func TestListAndInfo(t *testing.T) {
	env := newTestEnv(t)
	refs := seedProjects(t, env)

	reg, err := env.svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !reflect.DeepEqual(reg.Projects, refs) {
		t.Errorf("List() = %+v, want %+v", reg.Projects, refs)
	}

	info, err := env.svc.Info(context.Background(), refs[1].Directory)
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if !info.Registered || info.Project.ID != "p2" {
		t.Errorf("Info() = %+v", info)
	}
	if info.MarkerPath != filepath.Join(refs[1].Directory, defs.MarkerFile) {
		t.Errorf("MarkerPath = %q", info.MarkerPath)
	}

	dir := env.projectDir(t, "loose")
	if err := env.store.SaveProject(dir, &models.ProjectRecord{ID: "p9", Name: "loose"}); err != nil {
		t.Fatalf("SaveProject() error = %v", err)
	}
	info, err = env.svc.Info(context.Background(), dir)
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if info.Registered {
		t.Error("unregistered project reported as registered")
	}
}

func TestCancelledContext(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := env.svc.Init(ctx, InitOptions{Directory: env.projectDir(t, "x")}); !errors.Is(err, context.Canceled) {
		t.Errorf("Init() error = %v, want context.Canceled", err)
	}
	if _, err := env.svc.Add(ctx, env.root); !errors.Is(err, context.Canceled) {
		t.Errorf("Add() error = %v, want context.Canceled", err)
	}
}
