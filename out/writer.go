// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes per-step snapshots of the cell-centered state to
// disk. It replaces an older FE-domain result browser built around
// Sum/Dom/Ipoints/TseriesR — all specific to node/integration-point
// fields on a fem.Domain: there is no equivalent domain object here,
// only the flat per-cell Snapshot, so every writer here is new,
// grounded on the *idiom* prior result/plot code uses (utl.Sf-built
// file names, gosl/plt for figures) rather than on any of its
// structures.
package out

import "github.com/gshipman/flecsale/topo"

// Snapshot is the per-step state an output writer consumes: per-cell
// velocity, pressure, density, internal energy,
// temperature, sound speed, and region, alongside the coordinates
// needed to place them in space. Every slice is indexed by cell id,
// Coords holding each cell's centroid (geocache.Cache.CellCentroid).
type Snapshot struct {
	Coords     [][]float64
	CellVel    [][]float64
	Pressure   []float64
	Density    []float64
	Energy     []float64 // specific internal energy
	Temp       []float64 // derived, may be empty if the EOS does not report one
	SoundSpeed []float64
	Region     []int
}

// Writer persists one step's Snapshot. Non-fatal writer failures are
// logged and do not stop the run.
type Writer interface {
	Write(step int, t float64, snap Snapshot) error
}

// New resolves postfix (the writer-selecting output extension) to a
// concrete Writer. exo/g/vtk/vtu/vtm all require an external mesh-I/O
// tool this core does not embed and resolve to StubWriter; dat/plt use
// the two writers implemented here.
func New(t *topo.Topology, prefix, postfix string) Writer {
	switch postfix {
	case "dat":
		return &DatWriter{Topology: t, Prefix: prefix}
	case "plt":
		return &PlotWriter{Topology: t, Prefix: prefix}
	default:
		return &StubWriter{Postfix: postfix}
	}
}
