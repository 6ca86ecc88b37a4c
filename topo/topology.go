// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/gshipman/flecsale/shape"

// Cell holds one D-dimensional mesh cell: a region id, a shape tag,
// and an outward-oriented vertex ring/shell.
type Cell struct {
	ID     int
	Shape  shape.Tag
	Region int
	Verts  []int // ring order, canonical for the shape
	Faces  []int // face ids bounding this cell, same order as the shape's FaceLocalV (3D), EdgeLocalV (2D), or Verts (1D)
}

// Face is the D-1 entity: in 3D a planar (or split-defined) polygon
// with an ordered vertex ring; in 2D an edge; in 1D a single vertex.
// Tags is the set of boundary tags carried by this face; a face with
// an empty Tags set is an interior face.
type Face struct {
	ID    int
	Verts []int // ring order, outward-oriented relative to Cells[0]
	Edges []int // 3D only: edges bounding this face, in ring order
	Cells []int // 1 (boundary) or 2 (interior) cells sharing this face
	Tags  map[int]bool
}

// Edge is the 1-entity: an ordered pair of vertex references.
type Edge struct {
	ID int
	V  [2]int
}

// Corner is the (cell, vertex) incidence. WedgeStart/WedgeCount name
// the contiguous slice of Wedges this corner owns.
type Corner struct {
	ID         int
	Cell       int
	Vertex     int
	WedgeStart int
	WedgeCount int
}

// Wedge is the finest subcell simplex: incident to (cell, face, edge,
// vertex) in 3D, (cell, edge, vertex) in 2D (Face==-1 there), or
// (cell, vertex) in 1D (Edge==-1 there; Face is the vertex's own
// point-entity id).
type Wedge struct {
	ID     int
	Corner int
	Cell   int
	Face   int // -1 in 2D
	Edge   int
	Vertex int
}

// Topology owns all entity arrays and precomputed incidence tables. It
// is built once by Build and never mutated afterwards; only the
// Coords slice changes, under mesh motion.
type Topology struct {
	Ndim int

	Coords  [][]float64 // [nverts][ndim], mutable
	Edges   []Edge
	Faces   []Face
	Cells   []Cell
	Corners []Corner
	Wedges  []Wedge

	// incidence, precomputed once at Build time
	vertCells   [][]int
	vertFaces   [][]int
	vertEdges   [][]int
	vertCorners [][]int
	vertWedges  [][]int
	cellCorners [][]int
	faceWedges  [][]int
}

// NumVerts, NumEdges, ... report the size of each entity collection,
// for iteration over "the collection of all entities of a given kind".
func (t *Topology) NumVerts() int   { return len(t.Coords) }
func (t *Topology) NumEdges() int   { return len(t.Edges) }
func (t *Topology) NumFaces() int   { return len(t.Faces) }
func (t *Topology) NumCells() int   { return len(t.Cells) }
func (t *Topology) NumCorners() int { return len(t.Corners) }
func (t *Topology) NumWedges() int  { return len(t.Wedges) }

// VerticesOfCell returns the vertex ring of a cell in canonical order.
func (t *Topology) VerticesOfCell(cell int) []int { return t.Cells[cell].Verts }

// FacesOfCell returns the faces bounding a cell (3D), or the edges
// treated as faces (2D), in the shape's canonical order.
func (t *Topology) FacesOfCell(cell int) []int { return t.Cells[cell].Faces }

// CellsOfVertex returns the cells incident to a vertex.
func (t *Topology) CellsOfVertex(v int) []int { return t.vertCells[v] }

// FacesOfVertex returns the faces incident to a vertex.
func (t *Topology) FacesOfVertex(v int) []int { return t.vertFaces[v] }

// EdgesOfVertex returns the edges incident to a vertex.
func (t *Topology) EdgesOfVertex(v int) []int { return t.vertEdges[v] }

// CornersOfCell returns the corners of a cell, in vertex-ring order.
func (t *Topology) CornersOfCell(cell int) []int { return t.cellCorners[cell] }

// CornersOfVertex returns the corners incident to a vertex (one per
// incident cell).
func (t *Topology) CornersOfVertex(v int) []int { return t.vertCorners[v] }

// WedgesOfCorner returns the (contiguous) wedges owned by a corner.
func (t *Topology) WedgesOfCorner(cn int) []int {
	c := t.Corners[cn]
	ids := make([]int, c.WedgeCount)
	for i := 0; i < c.WedgeCount; i++ {
		ids[i] = c.WedgeStart + i
	}
	return ids
}

// WedgesOfVertex returns every wedge incident to a vertex, across all
// of the vertex's corners.
func (t *Topology) WedgesOfVertex(v int) []int { return t.vertWedges[v] }

// WedgesOfFace returns every wedge incident to a face.
func (t *Topology) WedgesOfFace(f int) []int { return t.faceWedges[f] }

// WedgesOfCell returns every wedge of every corner of a cell.
func (t *Topology) WedgesOfCell(cell int) []int {
	var ids []int
	for _, cn := range t.cellCorners[cell] {
		ids = append(ids, t.WedgesOfCorner(cn)...)
	}
	return ids
}

// IsBoundaryFace reports whether a face carries any boundary tag: a
// vertex is boundary iff at least one incident face is boundary.
func (t *Topology) IsBoundaryFace(f int) bool { return len(t.Faces[f].Tags) > 0 }

// IsBoundaryVertex reports whether a vertex has any incident boundary
// face.
func (t *Topology) IsBoundaryVertex(v int) bool {
	for _, f := range t.vertFaces[v] {
		if t.IsBoundaryFace(f) {
			return true
		}
	}
	return false
}

// FaceHasTag reports whether face f carries boundary tag.
func (t *Topology) FaceHasTag(f, tag int) bool { return t.Faces[f].Tags[tag] }

// WedgeFace returns the face a wedge belongs to: its own Face in 3D,
// or its mirrored Edge (which carries the same id as the 2D Face it
// coincides with) in 2D. Boundary-condition code that must not
// special-case dimensionality reads a wedge's face through this
// method rather than the Face/Edge fields directly.
func (t *Topology) WedgeFace(w int) int {
	wd := t.Wedges[w]
	if wd.Face >= 0 {
		return wd.Face
	}
	return wd.Edge
}
