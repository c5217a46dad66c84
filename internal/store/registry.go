package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/modu-ai/switch/pkg/models"
)

// EnsureRegistry creates the registry directory and an empty registry
// file when they do not exist yet. Existing content is not read.
func (s *Store) EnsureRegistry() error {
	if err := os.MkdirAll(filepath.Dir(s.registryPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if _, err := os.Stat(s.registryPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat user config: %w", err)
	}
	f, err := os.OpenFile(s.registryPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("create user config: %w", err)
	}
	s.logger.Info("user config created", "path", s.registryPath)
	return f.Close()
}

// LoadRegistry reads the user registry. A missing file is created empty;
// malformed content fails the whole load with a *ParseError.
func (s *Store) LoadRegistry() (*models.Registry, error) {
	if err := s.EnsureRegistry(); err != nil {
		return nil, err
	}

	s.logger.Debug("reading user config", "path", s.registryPath)

	data, err := os.ReadFile(s.registryPath)
	if err != nil {
		return nil, fmt.Errorf("read user config: %w", err)
	}

	reg := &models.Registry{}
	if _, err := toml.Decode(string(data), reg); err != nil {
		return nil, &ParseError{Path: s.registryPath, Err: err}
	}

	for i, ref := range reg.Projects {
		if field := missingReferenceField(ref); field != "" {
			return nil, &ParseError{Path: s.registryPath, Field: fmt.Sprintf("projects[%d].%s", i, field)}
		}
	}

	s.logger.Debug("loaded projects from user config", "count", reg.Len())
	return reg, nil
}

// SaveRegistry overwrites the registry file with the full list.
func (s *Store) SaveRegistry(reg *models.Registry) error {
	if err := os.MkdirAll(filepath.Dir(s.registryPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := encodeTOML(s.registryPath, reg); err != nil {
		return fmt.Errorf("write user config: %w", err)
	}
	s.logger.Debug("updated user config", "path", s.registryPath, "count", reg.Len())
	return nil
}

func missingReferenceField(ref models.ProjectReference) string {
	switch {
	case ref.ID == "":
		return "id"
	case ref.Name == "":
		return "name"
	case ref.Directory == "":
		return "directory"
	}
	return ""
}
