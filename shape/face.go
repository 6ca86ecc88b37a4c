// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "math"

// FaceAreaNormalCentroid computes the area, outward unit normal, and
// centroid of a planar polygon face given as a ring of vertex
// coordinates in ℝ³, by fan-triangulating from the face's own first
// vertex. For a quadrilateral this triangulates exactly along the
// 0→2 diagonal (triangles {0,1,2} and {0,2,3}): the split itself
// defines the area and normal, so the same fan triangulation is
// correct whether or not the face is planar. The direction of ring
// traversal must already be outward-oriented; this function does not
// re-orient.
func FaceAreaNormalCentroid(coords [][]float64) (area float64, normal, centroid []float64) {
	sum := []float64{0, 0, 0}
	mom := []float64{0, 0, 0}
	totalTriArea := 0.0
	v0 := coords[0]
	for k := 1; k+1 < len(coords); k++ {
		v1, v2 := coords[k], coords[k+1]
		n := cross3(sub3(v1, v0), sub3(v2, v0))
		triArea := math.Sqrt(dot3(n, n)) / 2
		for i := 0; i < 3; i++ {
			sum[i] += n[i]
		}
		tc := []float64{(v0[0] + v1[0] + v2[0]) / 3, (v0[1] + v1[1] + v2[1]) / 3, (v0[2] + v1[2] + v2[2]) / 3}
		for i := 0; i < 3; i++ {
			mom[i] += triArea * tc[i]
		}
		totalTriArea += triArea
	}
	area = math.Sqrt(dot3(sum, sum)) / 2
	normal = make([]float64, 3)
	if area > 1e-300 {
		mag := math.Sqrt(dot3(sum, sum))
		for i := 0; i < 3; i++ {
			normal[i] = sum[i] / mag
		}
	}
	centroid = make([]float64, 3)
	if totalTriArea > 1e-300 {
		for i := 0; i < 3; i++ {
			centroid[i] = mom[i] / totalTriArea
		}
	} else {
		centroid = centroidOf(coords)
	}
	return
}

// EdgeLengthMidpoint computes the length and midpoint of a 1-entity
// edge/seam.
func EdgeLengthMidpoint(a, b []float64) (length float64, midpoint []float64) {
	length = dist(a, b)
	midpoint = make([]float64, len(a))
	for i := range a {
		midpoint[i] = (a[i] + b[i]) / 2
	}
	return
}
