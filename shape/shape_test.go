// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"
)

func TestUnitSquareArea(t *testing.T) {
	k := Get(Quad)
	coords := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	a := k.Volume(coords)
	if math.Abs(a-1) > 1e-12 {
		t.Fatalf("quad area = %v, want 1", a)
	}
	c := k.Centroid(coords)
	if math.Abs(c[0]-0.5) > 1e-12 || math.Abs(c[1]-0.5) > 1e-12 {
		t.Fatalf("quad centroid = %v, want [0.5 0.5]", c)
	}
}

func TestUnitCubeVolume(t *testing.T) {
	k := Get(Hex)
	coords := [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	v := k.Volume(coords)
	if math.Abs(v-1) > 1e-9 {
		t.Fatalf("hex volume = %v, want 1", v)
	}
	c := k.Centroid(coords)
	want := []float64{0.5, 0.5, 0.5}
	for i := range want {
		if math.Abs(c[i]-want[i]) > 1e-9 {
			t.Fatalf("hex centroid = %v, want %v", c, want)
		}
	}
}

func TestTetVolume(t *testing.T) {
	k := Get(Tet)
	coords := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	v := k.Volume(coords)
	if math.Abs(v-1.0/6.0) > 1e-12 {
		t.Fatalf("tet volume = %v, want 1/6", v)
	}
}

func TestFaceAreaNormalCentroidUnitSquareFace(t *testing.T) {
	coords := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	area, normal, centroid := FaceAreaNormalCentroid(coords)
	if math.Abs(area-1) > 1e-12 {
		t.Fatalf("face area = %v, want 1", area)
	}
	if math.Abs(math.Abs(normal[2])-1) > 1e-12 {
		t.Fatalf("face normal = %v, want unit z", normal)
	}
	if math.Abs(centroid[0]-0.5) > 1e-9 || math.Abs(centroid[1]-0.5) > 1e-9 {
		t.Fatalf("face centroid = %v, want [0.5 0.5 0]", centroid)
	}
}

func TestMinLengthFromPairs(t *testing.T) {
	coords := [][]float64{{0, 0}, {3, 0}, {3, 1}}
	m := MinLengthFromPairs(coords)
	if math.Abs(m-1) > 1e-12 {
		t.Fatalf("min length = %v, want 1", m)
	}
}
