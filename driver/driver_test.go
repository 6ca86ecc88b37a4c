// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/fun"

	"github.com/gshipman/flecsale/bc"
	"github.com/gshipman/flecsale/config"
	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/shape"
	"github.com/gshipman/flecsale/topo"
)

func twoQuads(t *testing.T) *topo.Topology {
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
	return tp
}

// TestRunRestStateConservesMass runs a uniform, motionless, zero-
// velocity-boundary configuration for a few steps: with every boundary
// vertex pinned to zero velocity and uniform pressure everywhere,
// nothing should move and every cell's mass must stay exactly what it
// started as.
func TestRunRestStateConservesMass(t *testing.T) {
	tp := twoQuads(t)
	model := &eos.IdealGas{Gamma: 1.4}
	g := geocache.New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}

	cfg := &config.Config{
		CFL:       config.CFL{Acoustic: 0.5, Volume: 0.5, Growth: 1},
		MaxSteps:  3,
		FinalTime: 1e9,
		ICs: []config.InitialCondition{
			{Region: 0, Rho: 1, Vel: []float64{0, 0}, P: 1},
		},
	}

	cells, err := InitCells(tp, g, cfg.ICs, model)
	if err != nil {
		t.Fatalf("InitCells: %v", err)
	}
	wantMass := make([]float64, len(cells))
	for i, c := range cells {
		wantMass[i] = c.Mass
	}

	zero := &fun.Cte{C: 0}
	bcMap := bc.Map{1: {Tag: 1, Kind: bc.Velocity, Velocity: bc.VecFunc{zero, zero}}}

	d := New(tp, cells, bcMap, model, cfg, nil)
	if err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Step != cfg.MaxSteps {
		t.Fatalf("Step = %d, want %d", d.Step, cfg.MaxSteps)
	}
	for i, c := range d.Cells {
		if math.Abs(c.Mass-wantMass[i]) > 1e-12 {
			t.Fatalf("cell %d: Mass = %v, want %v (unchanged)", i, c.Mass, wantMass[i])
		}
	}
}
