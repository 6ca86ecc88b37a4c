// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"math"
	"testing"

	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/nodal"
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

// TestUpdateConservesMass checks "dM/dt = 0": Update never
// touches Mass, regardless of the forces or dt passed in.
func TestUpdateConservesMass(t *testing.T) {
	tp, g := twoQuads(t)
	corners := nodal.AssembleCorners(tp, g, []float64{1, 1}, []float64{1, 1})
	vertVel := make([][]float64, tp.NumVerts())
	for v := range vertVel {
		vertVel[v] = []float64{0, 0}
	}
	forces := Subcell(tp, corners, []float64{1, 1}, [][]float64{{0, 0}, {0, 0}}, vertVel)

	model := &eos.IdealGas{Gamma: 1.4}
	cells := []Cell{
		{Mass: 1, Momentum: []float64{0, 0}, TotalE: 2.5},
		{Mass: 1, Momentum: []float64{0, 0}, TotalE: 2.5},
	}
	vol := []float64{g.CellVol[0], g.CellVol[1]}

	if err := Update(tp, forces, vertVel, cells, vol, 0.01, model); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for c, cell := range cells {
		if cell.Mass != 1 {
			t.Fatalf("cell %d: Mass = %v, want 1 (untouched)", c, cell.Mass)
		}
		if cell.Rho != cell.Mass/cell.Vol {
			t.Fatalf("cell %d: Rho = %v, want Mass/Vol = %v", c, cell.Rho, cell.Mass/cell.Vol)
		}
		if cell.P <= 0 {
			t.Fatalf("cell %d: P = %v, want > 0", c, cell.P)
		}
	}
}

// TestRestStateZeroVolumeRateAndForces checks that with every vertex
// at rest the volume rate (dV/dt) is zero, and that with zero cell
// pressure and rest cell velocity every subcell force is zero.
func TestRestStateZeroVolumeRateAndForces(t *testing.T) {
	tp, g := twoQuads(t)
	corners := nodal.AssembleCorners(tp, g, []float64{1, 1}, []float64{1, 1})
	vertVel := make([][]float64, tp.NumVerts())
	for v := range vertVel {
		vertVel[v] = []float64{0, 0}
	}
	cellVel := [][]float64{{0, 0}, {0, 0}}

	dVdt := VolumeRate(tp, corners, vertVel)
	for c, v := range dVdt {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("cell %d: dV/dt = %v, want 0 at rest", c, v)
		}
	}

	forces := Subcell(tp, corners, []float64{0, 0}, cellVel, vertVel)
	for cn, f := range forces {
		for i, v := range f {
			if math.Abs(v) > 1e-12 {
				t.Fatalf("corner %d: force[%d] = %v, want 0 under zero pressure and rest velocity", cn, i, v)
			}
		}
	}
}
