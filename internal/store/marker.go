package store

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/modu-ai/switch/pkg/models"
)

// LoadProject reads the marker record in dir. A missing marker yields a
// *NotAProjectError; a marker without id or name yields a *ParseError.
// A missing activate list defaults to empty.
func (s *Store) LoadProject(dir string) (*models.ProjectRecord, error) {
	path := s.MarkerPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotAProjectError{Dir: dir}
		}
		return nil, fmt.Errorf("read project marker: %w", err)
	}

	p := &models.ProjectRecord{}
	if _, err := toml.Decode(string(data), p); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	switch {
	case p.ID == "":
		return nil, &ParseError{Path: path, Field: "id"}
	case p.Name == "":
		return nil, &ParseError{Path: path, Field: "name"}
	}

	if p.Activate == nil {
		p.Activate = []string{}
	}
	return p, nil
}

// SaveProject overwrites the marker record in dir.
func (s *Store) SaveProject(dir string, p *models.ProjectRecord) error {
	if p.Activate == nil {
		p.Activate = []string{}
	}
	if err := encodeTOML(s.MarkerPath(dir), p); err != nil {
		return fmt.Errorf("write project marker: %w", err)
	}
	s.logger.Debug("wrote project marker", "dir", dir, "id", p.ID)
	return nil
}
