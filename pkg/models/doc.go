// Package models provides the shared data models for switch.
//
// This package contains the two record types persisted by the record store
// and the ordered registry that ties them together.
//
// # Project Records
//
// A [ProjectRecord] lives in the project root as the marker file. It owns the
// project's identity (the id never changes after init) and its optional
// activation commands.
//
// # References
//
// A [ProjectReference] is one registry row: a cached copy of the record's id
// and name plus the directory the project was registered from. References are
// appended and removed, never edited in place.
//
// # Registry
//
// The [Registry] keeps references in insertion order, which is also the
// default display order of the picker:
//
//	reg := &models.Registry{}
//	if !reg.Append(ref) {
//	    fmt.Println("already added")
//	}
package models
