// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/gshipman/flecsale/shape"
)

// MeshInput is the external interface through which a caller supplies
// a mesh: vertex coordinates, cell-to-vertex rings with shape tags,
// and face tag sets. Mesh I/O itself (Exodus/VTK/Tecplot readers) is
// an external collaborator, out of scope for this package.
type MeshInput struct {
	Ndim       int         `json:"ndim"`
	Coords     [][]float64 `json:"coords"`
	CellVerts  [][]int     `json:"cell_verts"`
	CellShapes []shape.Tag `json:"cell_shapes"`
	CellRegion []int       `json:"cell_region"`

	// CellFaceVerts supplies the local face-vertex index lists for
	// Poly3D (general polyhedron) cells only, keyed by cell index;
	// every other shape's faces come from its registered shape.Kind
	// table. CellFaceVerts[c] may be nil for non-Poly3D cells.
	CellFaceVerts [][][]int `json:"cell_face_verts,omitempty"`

	// CellFaceTags[c][localFaceIdx] is the boundary tag carried by
	// that local face (0 = untagged/interior), matching the
	// canonical local-face order of the cell's shape.Kind (3D) or
	// local-edge order (2D).
	CellFaceTags [][]int `json:"cell_face_tags,omitempty"`
}

// Build constructs a Topology from raw mesh-import data: it derives
// faces/edges (deduplicated across sharing cells), builds corners and
// wedges, and validates topology consistency — a zero-volume cell is
// rejected here.
func Build(in MeshInput) (*Topology, error) {
	if len(in.Coords) < 2 {
		return nil, chk.Err("topo: at least 2 vertices are required\n")
	}
	if len(in.CellVerts) < 1 {
		return nil, chk.Err("topo: at least 1 cell is required\n")
	}

	t := &Topology{
		Ndim:   in.Ndim,
		Coords: in.Coords,
	}

	numCells := len(in.CellVerts)
	t.Cells = make([]Cell, numCells)

	faceKey2id := make(map[string]int)
	edgeKey2id := make(map[string]int)

	getFace := func(verts []int) (id int, isNew bool) {
		key := sortedKey(verts)
		if id, ok := faceKey2id[key]; ok {
			return id, false
		}
		id = len(t.Faces)
		t.Faces = append(t.Faces, Face{ID: id, Verts: append([]int(nil), verts...), Tags: map[int]bool{}})
		faceKey2id[key] = id
		return id, true
	}
	getEdge := func(a, b int) int {
		key := sortedKey([]int{a, b})
		if id, ok := edgeKey2id[key]; ok {
			return id
		}
		id := len(t.Edges)
		t.Edges = append(t.Edges, Edge{ID: id, V: [2]int{a, b}})
		edgeKey2id[key] = id
		return id
	}

	type wrec struct {
		face, edge, vertex int
	}

	var corners []Corner
	var wedges []Wedge
	cellCorners := make([][]int, numCells)
	vertCells := make([][]int, len(in.Coords))
	vertFaces := make([][]int, len(in.Coords))
	vertEdges := make([][]int, len(in.Coords))
	vertCorners := make([][]int, len(in.Coords))
	vertWedges := make([][]int, len(in.Coords))
	var faceWedges [][]int // grown as faces are discovered

	growFaceWedges := func(id int) {
		for len(faceWedges) <= id {
			faceWedges = append(faceWedges, nil)
		}
	}

	for c := 0; c < numCells; c++ {
		verts := in.CellVerts[c]
		tag := in.CellShapes[c]
		kind := shape.MustGet(tag)

		coords := make([][]float64, len(verts))
		for i, v := range verts {
			coords[i] = in.Coords[v]
		}
		if err := validateVolume(kind, tag, c, coords, in.CellFaceVerts); err != nil {
			return nil, err
		}

		region := 0
		if in.CellRegion != nil {
			region = in.CellRegion[c]
		}
		cell := Cell{ID: c, Shape: tag, Region: region, Verts: verts}

		var faceTags []int
		if in.CellFaceTags != nil {
			faceTags = in.CellFaceTags[c]
		}

		recordsByVertex := make(map[int][]wrec)

		if in.Ndim == 1 {
			cell.Faces = make([]int, len(verts))
			for li, v := range verts {
				fid, isNew := getFace([]int{v})
				cell.Faces[li] = fid
				growFaceWedges(fid)
				if isNew {
					vertFaces[v] = appendUnique(vertFaces[v], fid)
				}
				t.Faces[fid].Cells = appendUnique(t.Faces[fid].Cells, c)
				if li < len(faceTags) && faceTags[li] != 0 {
					t.Faces[fid].Tags[faceTags[li]] = true
				}
				recordsByVertex[v] = append(recordsByVertex[v], wrec{face: fid, edge: -1, vertex: v})
			}
		} else if in.Ndim == 2 {
			localEdges := kind.EdgeLocalV
			if tag == shape.Poly {
				localEdges = shape.CyclicEdges(len(verts))
			}
			cell.Faces = make([]int, len(localEdges))
			for li, pair := range localEdges {
				va, vb := verts[pair[0]], verts[pair[1]]
				fid, isNew := getFace([]int{va, vb})
				cell.Faces[li] = fid
				growFaceWedges(fid)
				if isNew {
					t.Edges = append(t.Edges, Edge{ID: fid, V: [2]int{va, vb}})
					vertFaces[va] = appendUnique(vertFaces[va], fid)
					vertFaces[vb] = appendUnique(vertFaces[vb], fid)
					vertEdges[va] = appendUnique(vertEdges[va], fid)
					vertEdges[vb] = appendUnique(vertEdges[vb], fid)
				}
				t.Faces[fid].Cells = appendUnique(t.Faces[fid].Cells, c)
				if li < len(faceTags) && faceTags[li] != 0 {
					t.Faces[fid].Tags[faceTags[li]] = true
				}
				recordsByVertex[va] = append(recordsByVertex[va], wrec{face: -1, edge: fid, vertex: va})
				recordsByVertex[vb] = append(recordsByVertex[vb], wrec{face: -1, edge: fid, vertex: vb})
			}
		} else {
			var localFaces [][]int
			if tag == shape.Poly3D {
				localFaces = in.CellFaceVerts[c]
			} else {
				localFaces = kind.FaceLocalV
			}
			cell.Faces = make([]int, len(localFaces))
			for fi, localV := range localFaces {
				ring := make([]int, len(localV))
				for k, lv := range localV {
					ring[k] = verts[lv]
				}
				fid, isNew := getFace(ring)
				cell.Faces[fi] = fid
				growFaceWedges(fid)
				if isNew {
					t.Faces[fid].Edges = nil
				}
				t.Faces[fid].Cells = appendUnique(t.Faces[fid].Cells, c)
				if fi < len(faceTags) && faceTags[fi] != 0 {
					t.Faces[fid].Tags[faceTags[fi]] = true
				}
				fn := len(ring)
				for k := 0; k < fn; k++ {
					va, vb := ring[k], ring[(k+1)%fn]
					eid := getEdge(va, vb)
					if isNew {
						t.Faces[fid].Edges = appendUnique(t.Faces[fid].Edges, eid)
					}
					vertFaces[va] = appendUnique(vertFaces[va], fid)
					vertFaces[vb] = appendUnique(vertFaces[vb], fid)
					vertEdges[va] = appendUnique(vertEdges[va], eid)
					vertEdges[vb] = appendUnique(vertEdges[vb], eid)
					recordsByVertex[va] = append(recordsByVertex[va], wrec{face: fid, edge: eid, vertex: va})
					recordsByVertex[vb] = append(recordsByVertex[vb], wrec{face: fid, edge: eid, vertex: vb})
				}
			}
		}

		for _, v := range verts {
			vertCells[v] = appendUnique(vertCells[v], c)
		}

		for _, v := range verts {
			recs, ok := recordsByVertex[v]
			if !ok {
				continue
			}
			sort.Slice(recs, func(i, j int) bool {
				if recs[i].face != recs[j].face {
					return recs[i].face < recs[j].face
				}
				return recs[i].edge < recs[j].edge
			})
			cornerID := len(corners)
			wedgeStart := len(wedges)
			for _, r := range recs {
				wedgeID := len(wedges)
				wedges = append(wedges, Wedge{ID: wedgeID, Corner: cornerID, Cell: c, Face: r.face, Edge: r.edge, Vertex: r.vertex})
				vertWedges[v] = append(vertWedges[v], wedgeID)
				growFaceWedges(r.edge)
				if r.face >= 0 {
					faceWedges[r.face] = append(faceWedges[r.face], wedgeID)
				} else {
					faceWedges[r.edge] = append(faceWedges[r.edge], wedgeID)
				}
			}
			corners = append(corners, Corner{ID: cornerID, Cell: c, Vertex: v, WedgeStart: wedgeStart, WedgeCount: len(recs)})
			cellCorners[c] = append(cellCorners[c], cornerID)
			vertCorners[v] = append(vertCorners[v], cornerID)
		}

		t.Cells[c] = cell
	}

	t.Corners = corners
	t.Wedges = wedges
	t.vertCells = vertCells
	t.vertFaces = vertFaces
	t.vertEdges = vertEdges
	t.vertCorners = vertCorners
	t.vertWedges = vertWedges
	t.cellCorners = cellCorners
	t.faceWedges = faceWedges
	return t, nil
}

// validateVolume rejects a cell whose vertex coincidence produces a
// non-positive volume.
func validateVolume(kind *shape.Kind, tag shape.Tag, cellID int, coords [][]float64, cellFaceVerts [][][]int) error {
	var vol float64
	if tag == shape.Poly3D {
		faces := cellFaceVerts[cellID]
		vol, _ = shape.FaceDecomposedVolumeCentroid(coords, faces)
	} else {
		vol = kind.Volume(coords)
	}
	if vol <= 0 {
		return chk.Err("topo: cell %d (%v) has non-positive volume %g\n", cellID, tag, vol)
	}
	return nil
}

func sortedKey(verts []int) string {
	s := append([]int(nil), verts...)
	sort.Ints(s)
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
