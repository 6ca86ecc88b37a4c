// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// In a 1D mesh the cell itself is a line segment; it has two vertices,
// no internal faces, and two boundary "vertices" that play the role of
// the D-1 entity: in 2D that entity coincides with an edge, in 1D with
// a vertex.

func init() {
	register(&Kind{
		Tag:        Line,
		Nverts:     2,
		Gndim:      1,
		Centroid:   lineCentroid,
		Volume:     lineVolume,
		MinLength:  lineMinLength,
		EdgeLocalV: [][]int{{0, 1}},
	})
}

func lineCentroid(coords [][]float64) []float64 {
	return centroidOf(coords)
}

func lineVolume(coords [][]float64) float64 {
	return dist(coords[0], coords[1])
}

func lineMinLength(coords [][]float64) float64 {
	return lineVolume(coords)
}
