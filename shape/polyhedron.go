// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// Tet, Hex, Prism and Pyramid carry a fixed FaceLocalV table, the data
// form of gofem's shp.hex8.FaceLocalV (shp/hexs.go). Poly3D (a general
// polyhedron) has a variable face count, so topo.Build receives its
// face-vertex lists directly from the mesh input and drives the same
// FaceDecomposedVolumeCentroid kernel with them.

func init() {
	register(&Kind{
		Tag:        Tet,
		Nverts:     4,
		Gndim:      3,
		Centroid:   tetCentroid,
		Volume:     tetVolume,
		MinLength:  MinLengthFromPairs,
		FaceLocalV: [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}},
	})
	register(&Kind{
		Tag:        Hex,
		Nverts:     8,
		Gndim:      3,
		Centroid:   polyhedronCentroid,
		Volume:     polyhedronVolume,
		MinLength:  MinLengthFromPairs,
		FaceLocalV: [][]int{{0, 4, 7, 3}, {1, 2, 6, 5}, {0, 1, 5, 4}, {2, 3, 7, 6}, {0, 3, 2, 1}, {4, 5, 6, 7}},
	})
	register(&Kind{
		Tag:        Prism,
		Nverts:     6,
		Gndim:      3,
		Centroid:   polyhedronCentroid,
		Volume:     polyhedronVolume,
		MinLength:  MinLengthFromPairs,
		FaceLocalV: [][]int{{0, 2, 1}, {3, 4, 5}, {0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5}},
	})
	register(&Kind{
		Tag:        Pyramid,
		Nverts:     5,
		Gndim:      3,
		Centroid:   polyhedronCentroid,
		Volume:     polyhedronVolume,
		MinLength:  MinLengthFromPairs,
		FaceLocalV: [][]int{{0, 3, 2, 1}, {0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	})
	register(&Kind{
		Tag:       Poly3D,
		Gndim:     3,
		MinLength: MinLengthFromPairs,
		// Centroid and Volume are left nil: a general polyhedron's
		// face table is per-cell, not per-tag, so topo.Build calls
		// FaceDecomposedVolumeCentroid directly with the cell's own
		// faces rather than through this Kind's callbacks.
	})
}

func tetVolume(coords [][]float64) float64 {
	v, _ := tetDecompose(coords, [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}})
	return v
}

func tetCentroid(coords [][]float64) []float64 {
	_, c := tetDecompose(coords, [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}})
	return c
}

func polyhedronVolume(coords [][]float64) float64 {
	k := Get(Hex)
	if len(coords) == 5 {
		k = Get(Pyramid)
	} else if len(coords) == 6 {
		k = Get(Prism)
	}
	v, _ := tetDecompose(coords, k.FaceLocalV)
	return v
}

func polyhedronCentroid(coords [][]float64) []float64 {
	k := Get(Hex)
	if len(coords) == 5 {
		k = Get(Pyramid)
	} else if len(coords) == 6 {
		k = Get(Prism)
	}
	_, c := tetDecompose(coords, k.FaceLocalV)
	return c
}

// FaceDecomposedVolumeCentroid computes the volume and centroid of a
// polyhedron from its faces (each a list of local vertex indices, fan
// triangulated from the face's own first vertex) by summing signed
// sub-tetrahedra built from an interior apex to every face triangle.
// The apex choice does not affect the total volume or centroid,
// provided the faces are consistently outward-oriented: this is the
// same divergence-theorem identity wedge closure relies on
// (Σ_w area(w)·n(w) = 0).
func FaceDecomposedVolumeCentroid(coords [][]float64, faces [][]int) (vol float64, centroid []float64) {
	return tetDecompose(coords, faces)
}

func tetDecompose(coords [][]float64, faces [][]int) (vol float64, centroid []float64) {
	apex := centroidOf(coords)
	mom := []float64{0, 0, 0}
	for _, f := range faces {
		for k := 1; k+1 < len(f); k++ {
			v0, v1, v2 := coords[f[0]], coords[f[k]], coords[f[k+1]]
			tv := signedTetVolume(apex, v0, v1, v2)
			vol += tv
			for i := 0; i < 3; i++ {
				mom[i] += tv * (apex[i] + v0[i] + v1[i] + v2[i]) / 4
			}
		}
	}
	if math.Abs(vol) < 1e-300 {
		return 0, apex
	}
	c := make([]float64, 3)
	for i := range c {
		c[i] = mom[i] / vol
	}
	return math.Abs(vol), c
}

func signedTetVolume(apex, a, b, c []float64) float64 {
	u := sub3(a, apex)
	v := sub3(b, apex)
	w := sub3(c, apex)
	return dot3(u, cross3(v, w)) / 6
}

func sub3(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
