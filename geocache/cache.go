// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geocache holds the mesh's live geometric quantities: cell
// volumes/centroids, face areas/normals/centroids, edge lengths, and
// wedge facet areas/normals/centroids. Every quantity here depends on
// the current vertex coordinates and must be recomputed whenever the
// mesh moves; Topology itself stores only
// connectivity, never these derived numbers.
package geocache

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/gshipman/flecsale/shape"
	"github.com/gshipman/flecsale/topo"
)

// Cache holds one snapshot's worth of recomputed geometry, indexed in
// parallel with the owning Topology's entity arrays.
type Cache struct {
	CellVol       []float64
	CellCentroid  [][]float64
	CellMinLength []float64

	FaceArea     []float64
	FaceNormal   [][]float64
	FaceCentroid [][]float64

	EdgeLength   []float64
	EdgeMidpoint [][]float64

	WedgeFacetArea     []float64
	WedgeFacetNormal   [][]float64
	WedgeFacetCentroid [][]float64
}

// New allocates a Cache sized to t's entity counts. The caller must
// call Recompute once before reading any field.
func New(t *topo.Topology) *Cache {
	return &Cache{
		CellVol:       make([]float64, t.NumCells()),
		CellCentroid:  make([][]float64, t.NumCells()),
		CellMinLength: make([]float64, t.NumCells()),

		FaceArea:     make([]float64, t.NumFaces()),
		FaceNormal:   make([][]float64, t.NumFaces()),
		FaceCentroid: make([][]float64, t.NumFaces()),

		EdgeLength:   make([]float64, t.NumEdges()),
		EdgeMidpoint: make([][]float64, t.NumEdges()),

		WedgeFacetArea:     make([]float64, t.NumWedges()),
		WedgeFacetNormal:   make([][]float64, t.NumWedges()),
		WedgeFacetCentroid: make([][]float64, t.NumWedges()),
	}
}

// Recompute refreshes every geometric quantity from t.Coords. It must
// be called once per predictor stage and once per corrector stage,
// since both stages run the nodal solve against geometry evaluated at
// that stage's coordinates.
func (g *Cache) Recompute(t *topo.Topology) error {
	if err := g.recomputeEdges(t); err != nil {
		return err
	}
	if err := g.recomputeFaces(t); err != nil {
		return err
	}
	if err := g.recomputeCells(t); err != nil {
		return err
	}
	return g.recomputeWedges(t)
}

func (g *Cache) recomputeEdges(t *topo.Topology) error {
	for i, e := range t.Edges {
		length, mid := shape.EdgeLengthMidpoint(t.Coords[e.V[0]], t.Coords[e.V[1]])
		g.EdgeLength[i] = length
		g.EdgeMidpoint[i] = mid
	}
	return nil
}

func (g *Cache) recomputeFaces(t *topo.Topology) error {
	if t.Ndim == 1 {
		for i, f := range t.Faces {
			if len(f.Verts) != 1 {
				return chk.Err("geocache: 1D face %d does not have exactly 1 vertex\n", i)
			}
			v := f.Verts[0]
			// direction is outward relative to Cells[0], the same
			// convention the 2D/3D Verts ring already carries: of the
			// owning cell's two endpoints, this face's vertex is
			// outward in whichever direction it sits away from the
			// other one.
			cellVerts := t.Cells[f.Cells[0]].Verts
			other := cellVerts[0]
			if other == v {
				other = cellVerts[1]
			}
			sign := 1.0
			if t.Coords[v][0] < t.Coords[other][0] {
				sign = -1
			}
			g.FaceArea[i] = 1
			g.FaceNormal[i] = []float64{sign}
			g.FaceCentroid[i] = append([]float64(nil), t.Coords[v]...)
		}
		return nil
	}
	if t.Ndim == 2 {
		for i, f := range t.Faces {
			if len(f.Verts) != 2 {
				return chk.Err("geocache: 2D face %d does not have exactly 2 vertices\n", i)
			}
			a, b := t.Coords[f.Verts[0]], t.Coords[f.Verts[1]]
			length, mid := shape.EdgeLengthMidpoint(a, b)
			g.FaceArea[i] = length
			g.FaceCentroid[i] = mid
			dx, dy := b[0]-a[0], b[1]-a[1]
			n := []float64{dy, -dx}
			la.VecScale(n, 0, 1/la.VecNorm(n), n)
			g.FaceNormal[i] = n
		}
		return nil
	}
	for i, f := range t.Faces {
		coords := gather(t.Coords, f.Verts)
		area, normal, centroid := shape.FaceAreaNormalCentroid(coords)
		g.FaceArea[i] = area
		g.FaceNormal[i] = normal
		g.FaceCentroid[i] = centroid
	}
	return nil
}

// recomputeCells computes cell volume/centroid/min-length. In 1D and
// 2D it dispatches through the cell's own shape.Kind (a segment's
// length, or Tri/Quad/Poly's shared shoelace kernel). In 3D it uses
// the cell's own cached face ring uniformly for every shape,
// tetrahedralizing from an interior apex
// (shape.FaceDecomposedVolumeCentroid) rather than dispatching by
// shape tag: this is exact for Tet/Hex/Prism/Pyramid/Poly3D alike and
// needs no per-shape special case, since consistent outward face
// orientation is all the identity requires.
func (g *Cache) recomputeCells(t *topo.Topology) error {
	for i, c := range t.Cells {
		coords := gather(t.Coords, c.Verts)
		kind := shape.MustGet(c.Shape)
		g.CellMinLength[i] = kind.MinLength(coords)

		if t.Ndim == 1 || t.Ndim == 2 {
			g.CellVol[i] = kind.Volume(coords)
			g.CellCentroid[i] = kind.Centroid(coords)
			continue
		}

		local2global := make(map[int]int, len(c.Verts))
		for li, v := range c.Verts {
			local2global[v] = li
		}
		localFaces := make([][]int, len(c.Faces))
		for fi, faceID := range c.Faces {
			ring := t.Faces[faceID].Verts
			local := make([]int, len(ring))
			for k, v := range ring {
				li, ok := local2global[v]
				if !ok {
					return chk.Err("geocache: cell %d face %d references vertex %d not in its own ring\n", i, faceID, v)
				}
				local[k] = li
			}
			localFaces[fi] = local
		}
		vol, centroid := shape.FaceDecomposedVolumeCentroid(coords, localFaces)
		if vol <= 0 {
			return chk.Err("geocache: cell %d collapsed to non-positive volume %g under mesh motion\n", i, vol)
		}
		g.CellVol[i] = vol
		g.CellCentroid[i] = centroid
	}
	return nil
}

// recomputeWedges derives every wedge's facet area/normal/centroid
// from its owning face (or, in 2D, its owning edge). A wedge's sign
// follows whether its cell is the face's first or second incident
// cell, so that summing wedge area·normal over a cell reproduces the
// divergence-theorem closure exactly.
//
// In 1D each cell has exactly 2 vertex-faces and one wedge per corner;
// a wedge's facet "area" is the conventional unit weight of a point
// entity, and its normal is the face's own ±1 direction along the
// line, so that the two wedges of a cell still sum to the segment's
// outward-oriented endpoints.
//
// In 2D each edge splits into exactly 2 half-edges, one per endpoint,
// each of half the edge's length and the edge's own normal: wedge
// closure then reduces to the elementary fact that a closed polygon's
// edge vectors sum to zero.
//
// In 3D each face is split into exactly 2 sub-triangles per incident
// vertex (vertex, incident-edge midpoint, face centroid) — the
// "median-dual" decomposition built into the wedge table by
// topo.Build. All of a face's sub-triangles are assigned the face's
// own unit normal, and their raw geometric areas are rescaled so they
// sum exactly to the face's own computed area: this guarantees
// Σ_face(wedge area·normal) = FaceArea·FaceNormal exactly, regardless
// of any non-planarity in the face itself, which in turn guarantees
// the cell-level closure identity via the same argument
// shape.FaceDecomposedVolumeCentroid relies on.
func (g *Cache) recomputeWedges(t *topo.Topology) error {
	if t.Ndim == 1 {
		for w := range t.Wedges {
			wd := t.Wedges[w]
			sign := wedgeSign(t, wd.Face, wd.Cell)
			g.WedgeFacetArea[w] = 1
			g.WedgeFacetNormal[w] = scaled(g.FaceNormal[wd.Face], sign)
			g.WedgeFacetCentroid[w] = append([]float64(nil), t.Coords[wd.Vertex]...)
		}
		return nil
	}
	if t.Ndim == 2 {
		for w := range t.Wedges {
			wd := t.Wedges[w]
			edge := wd.Edge
			sign := wedgeSign(t, edge, wd.Cell)
			g.WedgeFacetArea[w] = g.EdgeLength[edge] / 2
			g.WedgeFacetNormal[w] = scaled(g.FaceNormal[edge], sign)
			g.WedgeFacetCentroid[w] = midpoint(t.Coords[wd.Vertex], g.EdgeMidpoint[edge])
		}
		return nil
	}

	rawArea := make([]float64, t.NumWedges())
	rawCentroid := make([][]float64, t.NumWedges())
	faceRawSum := make([]float64, t.NumFaces())

	for f := 0; f < t.NumFaces(); f++ {
		for _, w := range t.WedgesOfFace(f) {
			wd := t.Wedges[w]
			v := t.Coords[wd.Vertex]
			mid := g.EdgeMidpoint[wd.Edge]
			fc := g.FaceCentroid[f]
			a, _, c := shape.FaceAreaNormalCentroid([][]float64{v, mid, fc})
			rawArea[w] = a
			rawCentroid[w] = c
			faceRawSum[f] += a
		}
	}

	for w := range t.Wedges {
		wd := t.Wedges[w]
		f := wd.Face
		scale := 1.0
		if faceRawSum[f] > 1e-300 {
			scale = g.FaceArea[f] / faceRawSum[f]
		}
		sign := wedgeSign(t, f, wd.Cell)
		g.WedgeFacetArea[w] = rawArea[w] * scale
		g.WedgeFacetNormal[w] = scaled(g.FaceNormal[f], sign)
		g.WedgeFacetCentroid[w] = rawCentroid[w]
	}
	return nil
}

func wedgeSign(t *topo.Topology, face, cell int) float64 {
	if len(t.Faces[face].Cells) > 0 && t.Faces[face].Cells[0] == cell {
		return 1
	}
	return -1
}

func scaled(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	la.VecScale(out, 0, s, v)
	return out
}

func midpoint(a, b []float64) []float64 {
	m := make([]float64, len(a))
	for i := range a {
		m[i] = (a[i] + b[i]) / 2
	}
	return m
}

func gather(coords [][]float64, ids []int) [][]float64 {
	out := make([][]float64, len(ids))
	for i, id := range ids {
		out[i] = coords[id]
	}
	return out
}

