// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodal

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/fun"

	"github.com/gshipman/flecsale/bc"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/shape"
	"github.com/gshipman/flecsale/topo"
)

func twoQuads(t *testing.T) (*topo.Topology, *geocache.Cache) {
	in := topo.MeshInput{
		Ndim: 2,
		Coords: [][]float64{
			{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 0}, {2, 1},
		},
		CellVerts:  [][]int{{0, 1, 2, 3}, {1, 4, 5, 2}},
		CellShapes: []shape.Tag{shape.Quad, shape.Quad},
		CellFaceTags: [][]int{
			{1, 0, 1, 1},
			{1, 1, 1, 0},
		},
	}
	tp, err := topo.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := geocache.New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	return tp, g
}

func TestAssembleCornersSymmetricAndClosed(t *testing.T) {
	tp, g := twoQuads(t)
	rho := []float64{1, 1}
	c := []float64{1, 1}
	corners := AssembleCorners(tp, g, rho, c)

	for cn, corner := range corners {
		for i := 0; i < tp.Ndim; i++ {
			for j := 0; j < tp.Ndim; j++ {
				if math.Abs(corner.M[i][j]-corner.M[j][i]) > 1e-12 {
					t.Fatalf("corner %d: M not symmetric: %v", cn, corner.M)
				}
			}
		}
	}

	for cell := 0; cell < tp.NumCells(); cell++ {
		sum := make([]float64, tp.Ndim)
		for _, cn := range tp.CornersOfCell(cell) {
			for i := 0; i < tp.Ndim; i++ {
				sum[i] += corners[cn].N[i]
			}
		}
		for i, v := range sum {
			if math.Abs(v) > 1e-9 {
				t.Fatalf("cell %d: Σ N_cn[%d] = %v, want 0", cell, i, v)
			}
		}
	}
}

func TestSolveVerticesVelocityBoundaryShortCircuits(t *testing.T) {
	tp, g := twoQuads(t)
	rho := []float64{1, 1}
	snd := []float64{1, 1}
	corners := AssembleCorners(tp, g, rho, snd)
	cellP := []float64{1, 1}
	cellVel := [][]float64{{0, 0}, {0, 0}}

	zero := &fun.Zero
	bcMap := bc.Map{
		1: {Tag: 1, Kind: bc.Velocity, Velocity: bc.VecFunc{zero, zero}},
	}

	u, err := SolveVertices(tp, g, corners, cellP, cellVel, bcMap, 0)
	if err != nil {
		t.Fatalf("SolveVertices: %v", err)
	}
	for v, uv := range u {
		for i, c := range uv {
			if math.Abs(c) > 1e-12 {
				t.Fatalf("vertex %d: u[%d] = %v, want 0 under zero velocity BC", v, i, c)
			}
		}
	}
}

// TestSolveVerticesSymmetryZeroesNormalComponent checks the Lagrange-
// multiplier constraint path: vertex 1 (1,0) sits on the flat bottom
// boundary of twoQuads, where both its incident boundary edges share
// the outward normal (0,-1), so a Symmetry condition on tag 1 must
// force its solved velocity's y-component to vanish even though the
// driving cell velocities are not axis-aligned.
func TestSolveVerticesSymmetryZeroesNormalComponent(t *testing.T) {
	tp, g := twoQuads(t)
	rho := []float64{1, 1}
	snd := []float64{1, 1}
	corners := AssembleCorners(tp, g, rho, snd)
	cellP := []float64{1, 1}
	cellVel := [][]float64{{2, 3}, {2, 3}}

	bcMap := bc.Map{1: {Tag: 1, Kind: bc.Symmetry}}

	u, err := SolveVertices(tp, g, corners, cellP, cellVel, bcMap, 0)
	if err != nil {
		t.Fatalf("SolveVertices: %v", err)
	}
	if math.Abs(u[1][1]) > 1e-9 {
		t.Fatalf("vertex 1: u_y = %v, want 0 under symmetry", u[1][1])
	}
}

func TestSolveVerticesMissingBoundaryCondErrors(t *testing.T) {
	tp, g := twoQuads(t)
	corners := AssembleCorners(tp, g, []float64{1, 1}, []float64{1, 1})
	_, err := SolveVertices(tp, g, corners, []float64{1, 1}, [][]float64{{0, 0}, {0, 0}}, bc.Map{}, 0)
	if err == nil {
		t.Fatalf("SolveVertices accepted a boundary tag with no registered condition")
	}
}
