// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// Tri, Quad and Poly are all simple, consistently-oriented 2D
// polygons; a single shoelace-based kernel serves all three,
// parameterised only by vertex count. This mirrors how gofem's
// shp package keeps one geometry function per concrete shape but
// shares the underlying natural-coordinate machinery (shp.Shape) across
// all of them.

func init() {
	register(&Kind{
		Tag:        Tri,
		Nverts:     3,
		Gndim:      2,
		Centroid:   polygonCentroid,
		Volume:     polygonArea,
		MinLength:  MinLengthFromPairs,
		EdgeLocalV: cyclicEdges(3),
	})
	register(&Kind{
		Tag:        Quad,
		Nverts:     4,
		Gndim:      2,
		Centroid:   polygonCentroid,
		Volume:     polygonArea,
		MinLength:  MinLengthFromPairs,
		EdgeLocalV: cyclicEdges(4),
	})
}

func init() {
	// Poly cells have a variable vertex count, so unlike Tri/Quad its
	// EdgeLocalV cannot be a fixed table; topo.Build computes the edge
	// ring for a Poly cell on the fly via CyclicEdges, using the cell's
	// actual vertex count.
	register(&Kind{
		Tag:       Poly,
		Gndim:     2,
		Centroid:  polygonCentroid,
		Volume:    polygonArea,
		MinLength: MinLengthFromPairs,
	})
}

// CyclicEdges returns the n edges of an n-gon in canonical ring order.
// Exported for topo.Build to use directly with Poly cells, whose edge
// table depends on the per-cell vertex count rather than the tag alone.
func CyclicEdges(n int) [][]int {
	return cyclicEdges(n)
}

// cyclicEdges returns the n edges of an n-gon in canonical ring order,
// tying the topo builder's "(face-id, edge-id) ascending" rule to the
// cell's own vertex order.
func cyclicEdges(n int) [][]int {
	e := make([][]int, n)
	for i := 0; i < n; i++ {
		e[i] = []int{i, (i + 1) % n}
	}
	return e
}

// polygonArea computes the signed area of a simple polygon via the
// shoelace formula and returns its absolute value.
func polygonArea(coords [][]float64) float64 {
	n := len(coords)
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += coords[i][0]*coords[j][1] - coords[j][0]*coords[i][1]
	}
	return math.Abs(a) / 2
}

// polygonCentroid computes the area-weighted centroid of a simple
// polygon. Falls back to the vertex average for degenerate
// (near-zero-area) input to avoid a division by zero.
func polygonCentroid(coords [][]float64) []float64 {
	n := len(coords)
	var cx, cy, a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := coords[i][0]*coords[j][1] - coords[j][0]*coords[i][1]
		a += cross
		cx += (coords[i][0] + coords[j][0]) * cross
		cy += (coords[i][1] + coords[j][1]) * cross
	}
	if math.Abs(a) < 1e-300 {
		return centroidOf(coords)
	}
	a *= 0.5
	return []float64{cx / (6 * a), cy / (6 * a)}
}
