// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geocache

import (
	"math"
	"testing"

	"github.com/gshipman/flecsale/shape"
	"github.com/gshipman/flecsale/topo"
)

// twoQuads mirrors topo's own fixture: two unit squares sharing an
// edge, every outer edge tagged 1.
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

func TestRecomputeCellVolume(t *testing.T) {
	tp := twoQuads(t)
	g := New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for c := 0; c < tp.NumCells(); c++ {
		if math.Abs(g.CellVol[c]-1) > 1e-12 {
			t.Fatalf("cell %d volume = %v, want 1", c, g.CellVol[c])
		}
	}
}

// TestWedgeClosure checks that for every cell, summing wedge facet
// area times outward unit normal over all of the cell's wedges
// returns the zero vector.
func TestWedgeClosure(t *testing.T) {
	tp := twoQuads(t)
	g := New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for c := 0; c < tp.NumCells(); c++ {
		sum := make([]float64, tp.Ndim)
		for _, w := range tp.WedgesOfCell(c) {
			for i := 0; i < tp.Ndim; i++ {
				sum[i] += g.WedgeFacetArea[w] * g.WedgeFacetNormal[w][i]
			}
		}
		for i, v := range sum {
			if math.Abs(v) > 1e-9 {
				t.Fatalf("cell %d: closure sum[%d] = %v, want 0 (sum %v)", c, i, v, sum)
			}
		}
	}
}

// threeLines mirrors topo's own fixture: 3 unit segments over x in
// [0,3], the two outer endpoints tagged 1.
func threeLines(t *testing.T) *topo.Topology {
	in := topo.MeshInput{
		Ndim:       1,
		Coords:     [][]float64{{0}, {1}, {2}, {3}},
		CellVerts:  [][]int{{0, 1}, {1, 2}, {2, 3}},
		CellShapes: []shape.Tag{shape.Line, shape.Line, shape.Line},
		CellFaceTags: [][]int{
			{1, 0},
			{0, 0},
			{0, 1},
		},
	}
	tp, err := topo.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tp
}

func TestRecompute1DCellLength(t *testing.T) {
	tp := threeLines(t)
	g := New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for c := 0; c < tp.NumCells(); c++ {
		if math.Abs(g.CellVol[c]-1) > 1e-12 {
			t.Fatalf("cell %d length = %v, want 1", c, g.CellVol[c])
		}
	}
}

func TestWedgeClosure1D(t *testing.T) {
	tp := threeLines(t)
	g := New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for c := 0; c < tp.NumCells(); c++ {
		sum := 0.0
		for _, w := range tp.WedgesOfCell(c) {
			sum += g.WedgeFacetArea[w] * g.WedgeFacetNormal[w][0]
		}
		if math.Abs(sum) > 1e-12 {
			t.Fatalf("cell %d: 1D closure sum = %v, want 0", c, sum)
		}
	}
}

func TestEdgeLength(t *testing.T) {
	tp := twoQuads(t)
	g := New(tp)
	if err := g.Recompute(tp); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	for e, edge := range tp.Edges {
		a, b := tp.Coords[edge.V[0]], tp.Coords[edge.V[1]]
		want := math.Hypot(b[0]-a[0], b[1]-a[1])
		if math.Abs(g.EdgeLength[e]-want) > 1e-12 {
			t.Fatalf("edge %d length = %v, want %v", e, g.EdgeLength[e], want)
		}
	}
}
