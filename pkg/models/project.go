// @MX:NOTE: [AUTO] 마커 파일(.switch.toml)과 레지스트리 행의 데이터 모델입니다. TOML에서 로드됩니다.
package models

import "fmt"

// ProjectRecord is the per-project marker record.
type ProjectRecord struct {
	ID       string   `toml:"id" yaml:"id" json:"id"`
	Name     string   `toml:"name" yaml:"name" json:"name"`
	Activate []string `toml:"activate" yaml:"activate" json:"activate"`
}

// HasActivation reports whether the project declares activation commands.
func (p ProjectRecord) HasActivation() bool {
	return len(p.Activate) > 0
}

// String returns "name:id", the form used in user-facing messages.
func (p ProjectRecord) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.ID)
}

// ProjectReference is a registry row pointing at a project directory.
type ProjectReference struct {
	ID        string `toml:"id" yaml:"id" json:"id"`
	Name      string `toml:"name" yaml:"name" json:"name"`
	Directory string `toml:"directory" yaml:"directory" json:"directory"`
}

// String returns "name:id".
func (r ProjectReference) String() string {
	return fmt.Sprintf("%s:%s", r.Name, r.ID)
}

// NewReference builds the registry row for a record located at directory.
func NewReference(p *ProjectRecord, directory string) ProjectReference {
	return ProjectReference{ID: p.ID, Name: p.Name, Directory: directory}
}
