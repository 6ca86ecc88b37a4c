// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bc implements boundary conditions on mesh faces: prescribed
// velocity, prescribed pressure, and symmetry (zero normal velocity).
// It only holds each condition's data; package nodal decides how a
// Cond enters the per-vertex system: Velocity
// short-circuits the solve entirely, Pressure corrects the
// right-hand side wedge by wedge, and Symmetry contributes one
// Lagrange-multiplier row per tag built from the vertex's own
// boundary wedge geometry — that construction needs the wedge table,
// which this package does not have access to. The condition record
// itself mirrors fem.FaceCond (fem/domain.go): a tag, a kind, and the
// fun.Func callback(s) that supply its time-dependent value.
package bc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Kind identifies what a Cond constrains.
type Kind int

const (
	Velocity Kind = iota // prescribes the full velocity vector
	Pressure             // prescribes an external pressure (corrects the vertex system's right-hand side instead of constraining velocity)
	Symmetry             // prescribes zero normal velocity; tangential component free
)

func (k Kind) String() string {
	switch k {
	case Velocity:
		return "velocity"
	case Pressure:
		return "pressure"
	case Symmetry:
		return "symmetry"
	}
	return "unknown"
}

// VecFunc composes Ndim independent scalar functions into a
// vector-valued one, since gosl/fun.Func (the "F(t, x)" interface used
// throughout gofem for time-dependent boundary data) is scalar.
type VecFunc []fun.Func

// At evaluates every component at time t and position x, the same
// (t, x) pair a Pressure condition's fun.Func receives.
func (v VecFunc) At(t float64, x []float64) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = f.F(t, x)
	}
	return out
}

// Cond is one boundary condition, associated with a mesh face tag.
type Cond struct {
	Tag      int
	Kind     Kind
	Velocity VecFunc  // Kind == Velocity
	Pressure fun.Func // Kind == Pressure
}

// Map associates a boundary tag with its condition.
type Map map[int]*Cond

// Get returns the condition registered for tag, or an error if none is
// registered: a boundary vertex with no matching condition is a fatal
// configuration error.
func (m Map) Get(tag int) (*Cond, error) {
	c, ok := m[tag]
	if !ok {
		return nil, chk.Err("bc: no condition registered for boundary tag %d\n", tag)
	}
	return c, nil
}
