// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state holds the solution fields carried on mesh entities:
// per-cell density/energy, per-vertex velocity, and whatever else a
// model registers. It generalises fem.Domain's Solution (y, dy/dt,
// ...) from one fixed set of named DOFs to an open map of
// (name, entity kind, version) keyed arrays, since the predictor-
// corrector driver needs a "begin-of-step" and
// "predicted" copy of several fields side by side.
package state

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gshipman/flecsale/topo"
)

// Key names one field array: a field has a name ("density", "velocity",
// ...), lives on one kind of entity, and a version distinguishing the
// begin-of-step value from the predictor/corrector stage's value.
type Key struct {
	Name    string
	Kind    topo.EntityKind
	Version int
}

// Versions used by the predictor-corrector loop.
const (
	VersionBegin     = 0 // y^n, known at the start of the step
	VersionPredicted = 1 // ŷ^(n+1/2) or ŷ^(n+1), the stage's own output
)

// Store holds every registered field. Scalars and Vectors are kept in
// separate maps so callers get back a concretely-typed slice instead
// of an interface{} they must assert.
type Store struct {
	scalars map[Key][]float64
	vectors map[Key][][]float64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		scalars: make(map[Key][]float64),
		vectors: make(map[Key][][]float64),
	}
}

// SetScalars installs (or replaces) a scalar field.
func (s *Store) SetScalars(name string, kind topo.EntityKind, version int, vals []float64) {
	s.scalars[Key{name, kind, version}] = vals
}

// Scalars returns a previously-installed scalar field, or an error if
// no field of that name/kind/version has been registered.
func (s *Store) Scalars(name string, kind topo.EntityKind, version int) ([]float64, error) {
	v, ok := s.scalars[Key{name, kind, version}]
	if !ok {
		return nil, chk.Err("state: no scalar field %q on %v (version %d)\n", name, kind, version)
	}
	return v, nil
}

// SetVectors installs (or replaces) a vector field, one []float64 per
// entity.
func (s *Store) SetVectors(name string, kind topo.EntityKind, version int, vals [][]float64) {
	s.vectors[Key{name, kind, version}] = vals
}

// Vectors returns a previously-installed vector field, or an error if
// no field of that name/kind/version has been registered.
func (s *Store) Vectors(name string, kind topo.EntityKind, version int) ([][]float64, error) {
	v, ok := s.vectors[Key{name, kind, version}]
	if !ok {
		return nil, chk.Err("state: no vector field %q on %v (version %d)\n", name, kind, version)
	}
	return v, nil
}

// CopyScalars duplicates a scalar field under a new version, e.g. to
// seed the corrector stage's working copy from the begin-of-step
// values before mutating it.
func (s *Store) CopyScalars(name string, kind topo.EntityKind, from, to int) error {
	src, err := s.Scalars(name, kind, from)
	if err != nil {
		return err
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	s.SetScalars(name, kind, to, dst)
	return nil
}

// CopyVectors duplicates a vector field under a new version.
func (s *Store) CopyVectors(name string, kind topo.EntityKind, from, to int) error {
	src, err := s.Vectors(name, kind, from)
	if err != nil {
		return err
	}
	dst := make([][]float64, len(src))
	for i, v := range src {
		dst[i] = append([]float64(nil), v...)
	}
	s.SetVectors(name, kind, to, dst)
	return nil
}
