package models

// Registry is the ordered list of known project references.
type Registry struct {
	Projects []ProjectReference `toml:"projects" yaml:"projects" json:"projects"`
}

// Len returns the number of references.
func (r *Registry) Len() int {
	return len(r.Projects)
}

// Find returns the first reference with the given id.
func (r *Registry) Find(id string) (ProjectReference, bool) {
	for _, ref := range r.Projects {
		if ref.ID == id {
			return ref, true
		}
	}
	return ProjectReference{}, false
}

// Contains reports whether a reference with the given id exists.
func (r *Registry) Contains(id string) bool {
	_, ok := r.Find(id)
	return ok
}

// Append adds ref at the end of the registry. It returns false and leaves the
// registry untouched when a reference with the same id is already present.
func (r *Registry) Append(ref ProjectReference) bool {
	if r.Contains(ref.ID) {
		return false
	}
	r.Projects = append(r.Projects, ref)
	return true
}

// RemoveID drops every reference with the given id and returns how many were
// removed. The relative order of the remaining references is preserved.
func (r *Registry) RemoveID(id string) int {
	kept := r.Projects[:0]
	removed := 0
	for _, ref := range r.Projects {
		if ref.ID == id {
			removed++
			continue
		}
		kept = append(kept, ref)
	}
	r.Projects = kept
	return removed
}

// Snapshot returns a copy of the references so callers cannot mutate the
// registry through the returned slice.
func (r *Registry) Snapshot() []ProjectReference {
	out := make([]ProjectReference, len(r.Projects))
	copy(out, r.Projects)
	return out
}
